package ring

import "errors"

var (
	// ErrDuplicateID is returned by Join when the joining node's id already
	// exists somewhere in the target ring.
	ErrDuplicateID = errors.New("chordring: duplicate node id in ring")

	// ErrNodeLeft is returned by any operation invoked on a node whose state
	// is StateLeft, turning use-after-leave into a checkable error.
	ErrNodeLeft = errors.New("chordring: node has left the ring")

	// ErrRingCorrupted is returned by FindSuccessor if its hop-count circuit
	// breaker trips. In a correctly stabilized ring this should never
	// happen; it signals a caller bug in sequencing join/leave/stabilize
	// rounds.
	ErrRingCorrupted = errors.New("chordring: find_successor exceeded hop bound, ring may be corrupted")
)
