// Package models provides shared data models for the server, the client and the katas.
package models

// DataJSON is the payload served on /api/data.
type DataJSON struct {
	Message string `json:"message"`
	Items   []Item `json:"items"`
}

// Item is one entry of a DataJSON payload.
type Item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Property is a rental listing.
type Property struct {
	ID       int    `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Rent     int    `json:"rent" yaml:"rent"`
	Bedrooms int    `json:"bedrooms" yaml:"bedrooms"`
}

// Order is a placed order.
type Order struct {
	ID       int     `json:"id" yaml:"id"`
	Customer string  `json:"customer" yaml:"customer"`
	Total    float64 `json:"total" yaml:"total"`
}

// Shipping is the shipment record for an order.
type Shipping struct {
	OrderID int    `json:"order_id" yaml:"order_id"`
	Address string `json:"address" yaml:"address"`
	Status  string `json:"status" yaml:"status"`
}

// ShippedOrder is an order joined with its shipping record.
type ShippedOrder struct {
	ID       int     `json:"id"`
	Customer string  `json:"customer"`
	Total    float64 `json:"total"`
	Address  string  `json:"address"`
	Status   string  `json:"status"`
}

// User represents a user in the system.
type User struct {
	ID     int      `json:"id" yaml:"id"`
	Name   string   `json:"name" yaml:"name"`
	Age    int      `json:"age" yaml:"age"`
	Active bool     `json:"active" yaml:"active"`
	Tags   []string `json:"tags,omitempty" yaml:"tags"`
}

// Booking is a stay booked by a user.
type Booking struct {
	ID            int     `json:"id" yaml:"id"`
	UserID        int     `json:"user_id" yaml:"user_id"`
	Nights        int     `json:"nights" yaml:"nights"`
	PricePerNight float64 `json:"price_per_night" yaml:"price_per_night"`
}
