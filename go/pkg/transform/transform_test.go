package transform

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	got := Filter([]int{1, 2, 3, 4, 5, 6}, func(n int) bool { return n%2 == 0 })
	if diff := cmp.Diff([]int{2, 4, 6}, got); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterNeverNil(t *testing.T) {
	assert.NotNil(t, Filter([]int(nil), func(int) bool { return true }))
	assert.NotNil(t, Filter([]int{1}, func(int) bool { return false }))
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	in := []int{1, 2, 3}
	_ = Filter(in, func(n int) bool { return n != 2 })
	assert.Equal(t, []int{1, 2, 3}, in)
}

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	if diff := cmp.Diff([]string{"1", "2", "3"}, got); diff != "" {
		t.Errorf("Map mismatch (-want +got):\n%s", diff)
	}
}

func TestReduce(t *testing.T) {
	got := Reduce([]string{"a", "b", "c"}, ">", func(acc, s string) string { return acc + s })
	assert.Equal(t, ">abc", got)

	assert.Equal(t, 7, Reduce([]int(nil), 7, func(acc, n int) int { return acc + n }))
}

func TestFind(t *testing.T) {
	v, ok := Find([]int{3, 8, 10}, func(n int) bool { return n > 5 })
	assert.True(t, ok)
	assert.Equal(t, 8, v)

	_, ok = Find([]int{1}, func(n int) bool { return n > 5 })
	assert.False(t, ok)
}

func TestGroupBy(t *testing.T) {
	got := GroupBy([]string{"apple", "avocado", "banana", "blueberry", "cherry"}, func(s string) byte { return s[0] })
	want := map[byte][]string{
		'a': {"apple", "avocado"},
		'b': {"banana", "blueberry"},
		'c': {"cherry"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GroupBy mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge(t *testing.T) {
	base := map[string]any{"name": "Andy", "age": 31}
	override := map[string]any{"age": 32, "married": true}

	got := Merge(base, override)

	want := map[string]any{"name": "Andy", "age": 32, "married": true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 31, base["age"], "inputs must not change")
	assert.Empty(t, Merge[string, int]())
}

func TestSum(t *testing.T) {
	assert.Equal(t, 15.5, Sum(2, 3, 4, 1, 5.5))
	assert.Equal(t, 0.0, Sum())
	assert.Equal(t, -1.0, Sum(1, -2))
}
