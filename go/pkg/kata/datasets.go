package kata

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/snippet-lab/go/pkg/models"
)

//go:embed datasets.yaml
var defaultDatasets []byte

// Datasets is the literal data the katas operate on.
type Datasets struct {
	Properties    []models.Property `yaml:"properties"`
	Orders        []models.Order    `yaml:"orders"`
	Shippings     []models.Shipping `yaml:"shippings"`
	Users         []models.User     `yaml:"users"`
	Bookings      []models.Booking  `yaml:"bookings"`
	Numbers       []float64         `yaml:"numbers"`
	Profile       map[string]any    `yaml:"profile"`
	ProfileUpdate map[string]any    `yaml:"profile_update"`
}

// DefaultDatasets returns the built-in datasets.
func DefaultDatasets() (*Datasets, error) {
	return ParseDatasets(defaultDatasets)
}

// ParseDatasets decodes a YAML document into Datasets.
func ParseDatasets(data []byte) (*Datasets, error) {
	var ds Datasets
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse datasets: %w", err)
	}
	return &ds, nil
}

// LoadDatasets reads datasets from a YAML file.
func LoadDatasets(path string) (*Datasets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read datasets: %w", err)
	}
	return ParseDatasets(data)
}
