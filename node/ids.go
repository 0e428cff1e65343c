package node

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator mints fresh node identities. Tree transforms receive a
// generator instead of reaching for ambient randomness, so tests can
// supply a deterministic one.
type IDGenerator interface {
	NewID() ID
}

// IDGeneratorFunc adapts a plain function to interface IDGenerator.
type IDGeneratorFunc func() ID

// NewID is part of interface IDGenerator.
func (f IDGeneratorFunc) NewID() ID {
	return f()
}

// UUIDGenerator mints random identities. It is the default generator.
type UUIDGenerator struct{}

// NewID is part of interface IDGenerator.
func (UUIDGenerator) NewID() ID {
	return ID(uuid.NewString())
}

// SequenceGenerator mints identities "<prefix><n>" with n counting up from
// 1. It is safe for concurrent use.
type SequenceGenerator struct {
	sync.Mutex
	Prefix string
	next   int
}

// NewSequence creates a sequence generator for a given prefix.
func NewSequence(prefix string) *SequenceGenerator {
	return &SequenceGenerator{Prefix: prefix}
}

// NewID is part of interface IDGenerator.
func (g *SequenceGenerator) NewID() ID {
	g.Lock()
	defer g.Unlock()
	g.next++
	return ID(fmt.Sprintf("%s%d", g.Prefix, g.next))
}

var _ IDGenerator = UUIDGenerator{}
var _ IDGenerator = &SequenceGenerator{}
