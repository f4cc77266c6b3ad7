package dataclient

import (
	"slices"
	"sync"

	"github.com/example/snippet-lab/go/pkg/models"
)

// InitialMessage is the placeholder held before the first successful load.
const InitialMessage = "Hello from the client!"

// Container holds the most recently loaded payload.
type Container struct {
	mu   sync.RWMutex
	data models.DataJSON
}

// NewContainer returns a container holding the placeholder payload.
func NewContainer() *Container {
	return &Container{data: models.DataJSON{Message: InitialMessage, Items: []models.Item{}}}
}

// Write replaces the held payload.
func (c *Container) Write(data models.DataJSON) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = data
}

// Snapshot returns a copy of the held payload.
func (c *Container) Snapshot() models.DataJSON {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := c.data
	out.Items = slices.Clone(c.data.Items)
	return out
}
