package transform

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/example/snippet-lab/go/pkg/models"
)

var properties = []models.Property{
	{ID: 1, Title: "Studio Apartment", Rent: 900, Bedrooms: 1},
	{ID: 2, Title: "Two Bedroom Flat", Rent: 1200, Bedrooms: 2},
	{ID: 3, Title: "Three Bedroom House", Rent: 950, Bedrooms: 3},
	{ID: 4, Title: "Luxury Penthouse", Rent: 2000, Bedrooms: 4},
}

func TestAffordableProperties(t *testing.T) {
	got := AffordableProperties(properties)

	want := []models.Property{{ID: 3, Title: "Three Bedroom House", Rent: 950, Bedrooms: 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AffordableProperties mismatch (-want +got):\n%s", diff)
	}
}

func TestAffordablePropertiesBoundaries(t *testing.T) {
	got := AffordableProperties([]models.Property{
		{ID: 1, Rent: 1000, Bedrooms: 2},
		{ID: 2, Rent: 999, Bedrooms: 2},
		{ID: 3, Rent: 999, Bedrooms: 1},
	})

	assert.Equal(t, []int{2}, Map(got, func(p models.Property) int { return p.ID }))
}

func TestShippedOrders(t *testing.T) {
	orders := []models.Order{
		{ID: 1, Customer: "Alice", Total: 19.98},
		{ID: 2, Customer: "Bob", Total: 49.99},
		{ID: 3, Customer: "Carol", Total: 5},
	}
	shippings := []models.Shipping{
		{OrderID: 3, Address: "3 Elm St", Status: "pending"},
		{OrderID: 1, Address: "1 Oak Ave", Status: "shipped"},
		{OrderID: 1, Address: "duplicate", Status: "ignored"},
		{OrderID: 9, Address: "nowhere", Status: "lost"},
	}

	got := ShippedOrders(orders, shippings)

	want := []models.ShippedOrder{
		{ID: 1, Customer: "Alice", Total: 19.98, Address: "1 Oak Ave", Status: "shipped"},
		{ID: 3, Customer: "Carol", Total: 5, Address: "3 Elm St", Status: "pending"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ShippedOrders mismatch (-want +got):\n%s", diff)
	}
}

func TestActiveUserNamesAndAverageAge(t *testing.T) {
	users := []models.User{
		{ID: 1, Name: "Alice", Age: 30, Active: true},
		{ID: 2, Name: "Bob", Age: 25},
		{ID: 3, Name: "Carol", Age: 35, Active: true},
	}

	assert.Equal(t, []string{"Alice", "Carol"}, ActiveUserNames(users))
	assert.Equal(t, 30.0, AverageAge(users))
	assert.Equal(t, 0.0, AverageAge(nil))
}

func TestBookingRevenueByUser(t *testing.T) {
	got := BookingRevenueByUser([]models.Booking{
		{ID: 1, UserID: 1, Nights: 2, PricePerNight: 100},
		{ID: 2, UserID: 2, Nights: 1, PricePerNight: 80},
		{ID: 3, UserID: 1, Nights: 3, PricePerNight: 50},
	})

	want := map[int]float64{1: 350, 2: 80}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BookingRevenueByUser mismatch (-want +got):\n%s", diff)
	}
}

func TestDestructureUser(t *testing.T) {
	name, age, rest := DestructureUser(models.User{ID: 7, Name: "Max", Age: 30, Active: true, Tags: []string{"admin"}})

	assert.Equal(t, "Max", name)
	assert.Equal(t, 30, age)
	assert.Equal(t, UserRest{ID: 7, Active: true, Tags: []string{"admin"}}, rest)
}
