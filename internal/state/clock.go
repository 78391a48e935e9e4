package state

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var seq uint64

func nextSeq() uint64 {
	return atomic.AddUint64(&seq, 1)
}

// NewStroke starts an empty stroke with a fresh ID and sequence number.
func NewStroke() *Stroke {
	return &Stroke{
		ID:      uuid.NewString(),
		Seq:     nextSeq(),
		Started: time.Now(),
	}
}
