package state

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

var (
	sessionID = uuid.NewString()
	sequence  uint64
)

func nextSequence() uint64 {
	return atomic.AddUint64(&sequence, 1)
}

// SessionID identifies this run of the application in logs.
func SessionID() string { return sessionID }

// NewLineID returns a process-unique identifier for a committed line.
func NewLineID() string {
	return fmt.Sprintf("line-%d-%s", nextSequence(), uuid.NewString()[:8])
}

// NewRoundID returns an identifier for one comparison round (animate, settle, fade).
func NewRoundID() string {
	return uuid.NewString()
}
