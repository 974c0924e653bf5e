package ring

import (
	"fmt"
	"hash"

	"go.uber.org/zap"
)

// State is a node's position in the ring-membership lifecycle.
type State int

const (
	StateSolo State = iota
	StateJoining
	StateInRing
	StateLeft
)

func (s State) String() string {
	switch s {
	case StateSolo:
		return "solo"
	case StateJoining:
		return "joining"
	case StateInRing:
		return "in_ring"
	case StateLeft:
		return "left"
	default:
		return "unknown"
	}
}

// maxFindSuccessorHops bounds FindSuccessor's iterative delegation. Under
// I1-I2 a lookup terminates within N hops (O(log N) once finger tables
// are populated); this is a circuit breaker against ring corruption, not
// a normal exit path.
const maxFindSuccessorHops = 4096

/*

Node is a single Chord ring member: an identifier, a successor and
predecessor link, a finger table of routing shortcuts, and the local
key-value shard it currently owns.

Fields are only written inside this package's methods and batch
helpers, but not only on the receiver: Join, Leave and Stabilize rewire
neighbouring nodes' successor/predecessor links, Join, Leave, Notify
and Insert write into other nodes' key maps, and DeleteAllNodes clears
every collected node's state.
*/
type Node struct {
	id    uint64
	m     uint
	state State

	successor   *Node
	predecessor *Node
	fingers     *FingerTable
	keys        map[uint64]Value

	hasher func() hash.Hash
	log    *zap.Logger
}

// New creates a Node with the given identifier. It starts as a solitary
// ring of one: successor is itself, predecessor is none.
func New(id uint64, opts ...Option) *Node {
	node := &Node{
		id:    id,
		state: StateSolo,
		keys:  make(map[uint64]Value),
	}

	DefaultOptions(node)
	for _, opt := range opts {
		opt(node)
	}

	node.successor = node
	node.predecessor = nil
	node.fingers = newFingerTable(node, node.m)

	return node
}

// ID returns this node's identifier.
func (n *Node) ID() uint64 { return n.id }

// M returns the ring's bit-width for this node.
func (n *Node) M() uint { return n.m }

// State returns the node's current membership state.
func (n *Node) State() State { return n.state }

// Successor returns the current successor link.
func (n *Node) Successor() *Node { return n.successor }

// Predecessor returns the current predecessor link, or nil.
func (n *Node) Predecessor() *Node { return n.predecessor }

// Finger returns finger i, or nil if out of range or unset.
func (n *Node) Finger(i uint) *Node { return n.fingers.Get(i) }

func (n *Node) String() string {
	return fmt.Sprintf("node(%d)", n.id)
}

func (n *Node) alive() error {
	if n.state == StateLeft {
		return ErrNodeLeft
	}
	return nil
}

func (n *Node) in(x, a, b uint64, li, ri bool) bool {
	return InInterval(x, a, b, n.m, li, ri)
}

/*

Join links this node into the ring reachable via known. Passing nil
makes this the founding member of a brand new ring.
*/
func (n *Node) Join(known *Node) error {
	if err := n.alive(); err != nil {
		return err
	}

	if known == nil {
		n.successor = n
		n.predecessor = nil
		n.state = StateSolo
		n.log.Debug("node founded ring", zap.Uint64("node", n.id))
		return nil
	}

	n.state = StateJoining

	succ, err := known.FindSuccessor(n.id)
	if err != nil {
		return err
	}
	if succ.id == n.id {
		return ErrDuplicateID
	}

	var pred *Node
	if succ.predecessor != nil && succ.predecessor != succ {
		pred = succ.predecessor
	} else {
		pred = known
	}
	if pred.id == n.id {
		return ErrDuplicateID
	}

	n.successor = succ
	n.predecessor = pred
	succ.predecessor = n
	pred.successor = n

	for k, v := range succ.keys {
		if n.in(k, pred.id, n.id, false, true) {
			n.keys[k] = v
			delete(succ.keys, k)
		}
	}

	n.fingers.Initialize()
	n.state = StateInRing

	n.log.Debug("node joined ring",
		zap.Uint64("node", n.id),
		zap.Uint64("successor", succ.id),
		zap.Uint64("predecessor", pred.id),
	)

	return nil
}

/*

Leave gracefully removes this node from the ring: its keys are handed to
its successor and its neighbors are rewired around it. Leaving a
solitary node (no other members) is a no-op. The node must not be used
again after Leave returns; every method checks state and returns
ErrNodeLeft otherwise.
*/
func (n *Node) Leave() error {
	if err := n.alive(); err != nil {
		return err
	}

	if n.successor == n && n.predecessor == nil {
		return nil
	}

	for k, v := range n.keys {
		n.successor.keys[k] = v
	}
	n.keys = nil

	n.predecessor.successor = n.successor
	n.successor.predecessor = n.predecessor

	n.log.Debug("node left ring",
		zap.Uint64("node", n.id),
		zap.Uint64("successor", n.successor.id),
		zap.Uint64("predecessor", n.predecessor.id),
	)

	n.state = StateLeft
	n.successor = nil
	n.predecessor = nil
	n.fingers = nil

	return nil
}

/*

FindSuccessor routes key to the node responsible for it: the first live
node whose id is >= key in clockwise order. Delegation is iterative, not
recursive, per the ring's design notes - this bounds stack depth and
would translate directly to a network hop per iteration.

When closestPrecedingFinger can't make progress (an unpopulated or stale
finger table - e.g. a hub node that every other member joined through
directly, without ever having its own table refreshed), delegation
falls back to a single successor hop rather than trusting the current
node's own successor pointer as the answer. That keeps a lookup correct
off of successor/predecessor links alone, degrading to an O(N) walk
instead of returning a wrong one-hop guess, and only costs the O(log N)
shortcut once fingers are populated.
*/
func (n *Node) FindSuccessor(key uint64) (*Node, error) {
	if err := n.alive(); err != nil {
		return nil, err
	}

	cursor := n
	for hop := 0; hop < maxFindSuccessorHops; hop++ {
		if key == cursor.id {
			return cursor, nil
		}
		if cursor.in(key, cursor.id, cursor.successor.id, false, true) {
			return cursor.successor, nil
		}

		next := cursor.closestPrecedingFinger(key)
		if next == cursor {
			next = cursor.successor
		}
		cursor = next
	}

	return nil, ErrRingCorrupted
}

// closestPrecedingFinger scans fingers from M down to 1 and returns the
// first one strictly between this node and key. Falls back to self.
func (n *Node) closestPrecedingFinger(key uint64) *Node {
	for i := n.m; i >= 1; i-- {
		f := n.fingers.Get(i)
		if f != nil && f != n && n.in(f.id, n.id, key, false, false) {
			return f
		}
	}
	return n
}

/*

Stabilize runs one round of successor/predecessor correction: it checks
whether the successor has learned of a closer predecessor since the last
round, adopts it if so, and notifies the successor of this node's
presence.
*/
func (n *Node) Stabilize() error {
	if err := n.alive(); err != nil {
		return err
	}

	if n.state == StateSolo {
		n.state = StateInRing
	}
	if n.successor == n {
		return nil
	}

	x := n.successor.predecessor
	if x != nil && x != n.successor && n.in(x.id, n.id, n.successor.id, false, false) {
		n.successor = x
		n.log.Debug("successor corrected via stabilize",
			zap.Uint64("node", n.id),
			zap.Uint64("successor", x.id),
		)
	}

	// Defensive repair, not part of the classical Chord paper: kept because
	// the seed scenario joins several nodes back to back without
	// interleaving Notify, and without this the ring needs extra rounds to
	// converge.
	if n.successor.predecessor == nil || n.in(n.successor.predecessor.id, n.id, n.successor.id, false, false) {
		n.successor.predecessor = n
	}

	return n.successor.Notify(n)
}

/*

Notify tells this node that candidate may be its predecessor. It is
accepted if there is no current predecessor, or candidate sits strictly
between the current predecessor and this node.

Accepting a new predecessor also re-homes any locally held keys that no
longer belong to this node under the corrected (predecessor, self]
range - this is what resolves the join-time migration gap noted in the
design notes: join's own migration step may see a stale predecessor
(the bootstrap node), and stabilization is what eventually gets it
right.
*/
func (n *Node) Notify(candidate *Node) error {
	if err := n.alive(); err != nil {
		return err
	}
	if candidate == nil {
		return nil
	}

	accept := n.predecessor == nil || n.in(candidate.id, n.predecessor.id, n.id, false, false)
	if !accept {
		return nil
	}

	n.predecessor = candidate
	n.log.Debug("predecessor updated via notify",
		zap.Uint64("node", n.id),
		zap.Uint64("predecessor", candidate.id),
	)

	for k, v := range n.keys {
		if !n.in(k, candidate.id, n.id, false, true) {
			candidate.keys[k] = v
			delete(n.keys, k)
		}
	}

	return nil
}

/*

FixFingers refreshes exactly one finger slot per call, advancing an
internal cursor and wrapping 1 -> M -> 1. Reports whether the refreshed
slot's target changed.
*/
func (n *Node) FixFingers() (bool, error) {
	if err := n.alive(); err != nil {
		return false, err
	}
	return n.fingers.fixNext(), nil
}

// RefreshFingers refreshes every finger slot in a single call. Join uses
// this because a freshly joined node needs a fully populated table
// immediately, not spread across M incremental FixFingers calls.
func (n *Node) RefreshFingers() error {
	if err := n.alive(); err != nil {
		return err
	}
	n.fingers.Initialize()
	return nil
}

// Insert stores value under key at whichever node is currently
// responsible for it. Pass ring.None for "no value supplied".
func (n *Node) Insert(key uint64, value Value) error {
	if err := n.alive(); err != nil {
		return err
	}
	responsible, err := n.FindSuccessor(key)
	if err != nil {
		return err
	}
	responsible.keys[key] = value
	return nil
}

// Remove deletes key from whichever node is currently responsible for
// it. Absence is not an error.
func (n *Node) Remove(key uint64) error {
	if err := n.alive(); err != nil {
		return err
	}
	responsible, err := n.FindSuccessor(key)
	if err != nil {
		return err
	}
	delete(responsible.keys, key)
	return nil
}

// Find routes key to its responsible node and returns that node plus
// whatever value is stored there (ring.None if absent).
func (n *Node) Find(key uint64) (*Node, Value, error) {
	if err := n.alive(); err != nil {
		return nil, None, err
	}
	responsible, err := n.FindSuccessor(key)
	if err != nil {
		return nil, None, err
	}
	return responsible, responsible.keys[key], nil
}
