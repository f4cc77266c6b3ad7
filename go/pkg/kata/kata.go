// Package kata is the catalog of data-transformation exercises and the
// code that runs and renders them.
package kata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/example/snippet-lab/go/pkg/models"
	"github.com/example/snippet-lab/go/pkg/transform"
)

// ErrUnknownKata is returned by Lookup for names not in the catalog.
var ErrUnknownKata = errors.New("unknown kata")

// ErrEmptyDataset is returned when a kata needs a dataset that has no rows.
var ErrEmptyDataset = errors.New("dataset is empty")

// Kata is one exercise.
type Kata struct {
	Name        string
	Description string
	Run         func(*Datasets) (any, error)
}

// DestructuredUser is the output of the destructure-user kata.
type DestructuredUser struct {
	Name string             `json:"name"`
	Age  int                `json:"age"`
	Rest transform.UserRest `json:"rest"`
}

var catalog = []Kata{
	{
		Name:        "affordable-properties",
		Description: "properties with rent below 1000 and at least 2 bedrooms",
		Run: func(ds *Datasets) (any, error) {
			return transform.AffordableProperties(ds.Properties), nil
		},
	},
	{
		Name:        "shipped-orders",
		Description: "orders joined with their shipping record by order id",
		Run: func(ds *Datasets) (any, error) {
			return transform.ShippedOrders(ds.Orders, ds.Shippings), nil
		},
	},
	{
		Name:        "active-user-names",
		Description: "names of active users",
		Run: func(ds *Datasets) (any, error) {
			return transform.ActiveUserNames(ds.Users), nil
		},
	},
	{
		Name:        "average-age",
		Description: "mean age over all users",
		Run: func(ds *Datasets) (any, error) {
			return transform.AverageAge(ds.Users), nil
		},
	},
	{
		Name:        "users-by-status",
		Description: "user names grouped by active or inactive",
		Run: func(ds *Datasets) (any, error) {
			groups := transform.GroupBy(ds.Users, func(u models.User) string {
				if u.Active {
					return "active"
				}
				return "inactive"
			})
			out := make(map[string][]string, len(groups))
			for status, users := range groups {
				out[status] = transform.Map(users, func(u models.User) string { return u.Name })
			}
			return out, nil
		},
	},
	{
		Name:        "booking-revenue",
		Description: "total booking revenue per user id",
		Run: func(ds *Datasets) (any, error) {
			return transform.BookingRevenueByUser(ds.Bookings), nil
		},
	},
	{
		Name:        "destructure-user",
		Description: "split the first user into name, age and the rest",
		Run: func(ds *Datasets) (any, error) {
			if len(ds.Users) == 0 {
				return nil, fmt.Errorf("users: %w", ErrEmptyDataset)
			}
			name, age, rest := transform.DestructureUser(ds.Users[0])
			return DestructuredUser{Name: name, Age: age, Rest: rest}, nil
		},
	},
	{
		Name:        "merge-profile",
		Description: "shallow merge of profile and profile_update",
		Run: func(ds *Datasets) (any, error) {
			return transform.Merge(ds.Profile, ds.ProfileUpdate), nil
		},
	},
	{
		Name:        "rest-sum",
		Description: "variadic sum of the numbers dataset",
		Run: func(ds *Datasets) (any, error) {
			return transform.Sum(ds.Numbers...), nil
		},
	},
}

// Catalog returns every kata sorted by name.
func Catalog() []Kata {
	out := slices.Clone(catalog)
	slices.SortFunc(out, func(a, b Kata) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Lookup finds a kata by name.
func Lookup(name string) (Kata, error) {
	for _, k := range catalog {
		if k.Name == name {
			return k, nil
		}
	}
	return Kata{}, fmt.Errorf("%w: %q", ErrUnknownKata, name)
}

// Render writes a kata result as indented JSON or as plain text.
func Render(w io.Writer, format string, result any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "text", "":
		_, err := fmt.Fprintf(w, "%+v\n", result)
		return err
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
