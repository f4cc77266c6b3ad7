package transform

import (
	"github.com/example/snippet-lab/go/pkg/models"
)

// Limits used by AffordableProperties.
const (
	MaxAffordableRent = 1000
	MinBedrooms       = 2
)

// AffordableProperties keeps properties renting below MaxAffordableRent
// with at least MinBedrooms bedrooms.
func AffordableProperties(props []models.Property) []models.Property {
	return Filter(props, func(p models.Property) bool {
		return p.Rent < MaxAffordableRent && p.Bedrooms >= MinBedrooms
	})
}

// ShippedOrders joins each order with the shipping record of the same id.
// Orders without a shipping record are dropped; the first record wins on duplicates.
func ShippedOrders(orders []models.Order, shippings []models.Shipping) []models.ShippedOrder {
	byOrder := make(map[int]models.Shipping, len(shippings))
	for _, s := range shippings {
		if _, seen := byOrder[s.OrderID]; !seen {
			byOrder[s.OrderID] = s
		}
	}

	matched := Filter(orders, func(o models.Order) bool {
		_, ok := byOrder[o.ID]
		return ok
	})
	return Map(matched, func(o models.Order) models.ShippedOrder {
		s := byOrder[o.ID]
		return models.ShippedOrder{
			ID:       o.ID,
			Customer: o.Customer,
			Total:    o.Total,
			Address:  s.Address,
			Status:   s.Status,
		}
	})
}

// ActiveUserNames returns the names of active users in input order.
func ActiveUserNames(users []models.User) []string {
	active := Filter(users, func(u models.User) bool { return u.Active })
	return Map(active, func(u models.User) string { return u.Name })
}

// AverageAge is the mean age of users, 0 for none.
func AverageAge(users []models.User) float64 {
	if len(users) == 0 {
		return 0
	}
	ages := Map(users, func(u models.User) float64 { return float64(u.Age) })
	return Sum(ages...) / float64(len(users))
}

// BookingRevenueByUser sums nights*price per user id.
func BookingRevenueByUser(bookings []models.Booking) map[int]float64 {
	return Reduce(bookings, map[int]float64{}, func(acc map[int]float64, b models.Booking) map[int]float64 {
		acc[b.UserID] += float64(b.Nights) * b.PricePerNight
		return acc
	})
}

// UserRest is what remains of a user after taking out name and age.
type UserRest struct {
	ID     int      `json:"id"`
	Active bool     `json:"active"`
	Tags   []string `json:"tags,omitempty"`
}

// DestructureUser splits a user into name, age and the remaining fields.
func DestructureUser(u models.User) (name string, age int, rest UserRest) {
	return u.Name, u.Age, UserRest{ID: u.ID, Active: u.Active, Tags: u.Tags}
}
