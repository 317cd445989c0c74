package highlight

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator produces highlight ids. Ids only need to be unique within one
// search call; the default UUID source makes collisions across calls unlikely
// but does not guarantee global uniqueness.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator is the default id source.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// SequentialGenerator yields "prefix-1", "prefix-2", ... so tests can assert
// exact ids. Not safe for concurrent use.
type SequentialGenerator struct {
	prefix string
	n      int
}

// NewSequentialGenerator creates a deterministic id generator.
func NewSequentialGenerator(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

func (g *SequentialGenerator) NewID() string {
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}
