package dataclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/example/snippet-lab/go/pkg/datafile"
	"github.com/example/snippet-lab/go/pkg/miniserver"
	"github.com/example/snippet-lab/go/pkg/models"
)

func newMiniServer(t *testing.T) *httptest.Server {
	t.Helper()
	p, err := datafile.FromBytes([]byte(`{"message":"Hello from the server!","items":[{"id":1,"name":"Item 1"},{"id":2,"name":"Item 2"}]}`))
	require.NoError(t, err)
	ts := httptest.NewServer(miniserver.NewHandler(p, nil))
	t.Cleanup(ts.Close)
	return ts
}

func TestFetch(t *testing.T) {
	ts := newMiniServer(t)

	data, err := New(nil).Fetch(context.Background(), ts.URL+"/api/data")
	require.NoError(t, err)

	assert.Equal(t, models.DataJSON{
		Message: "Hello from the server!",
		Items:   []models.Item{{ID: 1, Name: "Item 1"}, {ID: 2, Name: "Item 2"}},
	}, data)
}

func TestFetchNotFound(t *testing.T) {
	ts := newMiniServer(t)
	core, logs := observer.New(zap.ErrorLevel)

	_, err := New(zap.New(core)).Fetch(context.Background(), ts.URL+"/api/other")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, "HTTP error! status: 404", err.Error())

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Error fetching data", logs.All()[0].Message)
}

func TestFetchBadJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer ts.Close()

	_, err := New(nil).Fetch(context.Background(), ts.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestFetchCancelledContext(t *testing.T) {
	ts := newMiniServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil).Fetch(ctx, ts.URL+"/api/data")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchNilHTTPClient(t *testing.T) {
	ts := newMiniServer(t)

	_, err := (&Client{}).Fetch(context.Background(), ts.URL+"/api/data")
	assert.NoError(t, err)
}

func TestLoadInto(t *testing.T) {
	ts := newMiniServer(t)
	container := NewContainer()

	err := LoadInto(context.Background(), New(nil), ts.URL+"/api/data", container.Write)
	require.NoError(t, err)

	got := container.Snapshot()
	assert.Equal(t, "Hello from the server!", got.Message)
	assert.Len(t, got.Items, 2)
}

func TestLoadIntoFailureKeepsContainer(t *testing.T) {
	ts := newMiniServer(t)
	container := NewContainer()

	err := LoadInto(context.Background(), New(nil), ts.URL+"/missing", container.Write)
	require.Error(t, err)

	assert.Equal(t, InitialMessage, container.Snapshot().Message)
}
