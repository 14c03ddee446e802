package block

import "sync/atomic"

// ID is the stable integer identity assigned to a Block at construction.
// IDs are drawn from a single global counter so a Device and a Thread can
// never collide, resolving the uniqueness question left open by the
// original design: blocks are identified the same way regardless of which
// registry (device list or thread list) ends up holding them.
type ID uint64

var nextID uint64

// NewID returns the next globally unique block ID.
func NewID() ID {
	return ID(atomic.AddUint64(&nextID, 1))
}
