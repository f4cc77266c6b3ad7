// Package datafile loads the static JSON document served by the mini server.
//
// The file is read once, validated, and kept in its compact encoding so every
// request is answered from memory.
package datafile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/example/snippet-lab/go/pkg/models"
)

// ErrInvalidJSON is returned when the file is not a JSON document.
var ErrInvalidJSON = errors.New("data file is not valid JSON")

// Payload is the loaded document.
type Payload struct {
	path string
	body []byte
}

// Load reads path and returns its compact JSON encoding.
func Load(path string) (*Payload, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	p, err := FromBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.path = path
	return p, nil
}

// FromBytes builds a payload from an in-memory document.
func FromBytes(raw []byte) (*Payload, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return &Payload{body: buf.Bytes()}, nil
}

// Path is the file the payload was read from, empty for FromBytes.
func (p *Payload) Path() string { return p.path }

// Bytes returns the compact JSON. Callers must not modify it.
func (p *Payload) Bytes() []byte { return p.body }

// Decode unmarshals the payload into the DataJSON shape.
func (p *Payload) Decode() (models.DataJSON, error) {
	var data models.DataJSON
	if err := json.Unmarshal(p.body, &data); err != nil {
		return models.DataJSON{}, fmt.Errorf("decode payload: %w", err)
	}
	return data, nil
}
