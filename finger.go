package ring

/*

FingerTable is a node's dense sequence of M routing shortcuts, indexed
1..m (index 0 is unused, keeping finger i's meaning "start at 2^(i-1)"
literal). Finger i points at the first node at least 2^(i-1) slots
forward, which is what compresses O(N) hops to O(log N).
*/
type FingerTable struct {
	owner *Node
	m     uint
	slots []*Node
	next  uint // cursor for the incremental fix-fingers protocol, 1..m
}

func newFingerTable(owner *Node, m uint) *FingerTable {
	return &FingerTable{
		owner: owner,
		m:     m,
		slots: make([]*Node, m+1),
		next:  1,
	}
}

// Get returns finger i, or nil if i is out of range or unset.
func (ft *FingerTable) Get(i uint) *Node {
	if i < 1 || i > ft.m {
		return nil
	}
	return ft.slots[i]
}

// Set assigns finger i. Out-of-range indices are silently ignored: the
// table fixes its own bounds, an out-of-range caller is a programming
// error that should not crash the ring.
func (ft *FingerTable) Set(i uint, n *Node) {
	if i < 1 || i > ft.m {
		return
	}
	ft.slots[i] = n
}

// Start returns the identifier finger i targets: (owner.id + 2^(i-1)) mod 2^m.
func (ft *FingerTable) Start(i uint) uint64 {
	mask := uint64(1)<<ft.m - 1 // all ones when m = 64
	return (ft.owner.id + (uint64(1) << (i - 1))) & mask
}

// Initialize populates every slot by asking the owning node to route to
// each finger's start identifier. Used by Join, where every slot must be
// live immediately rather than trickling in over M incremental calls.
func (ft *FingerTable) Initialize() {
	for i := uint(1); i <= ft.m; i++ {
		succ, err := ft.owner.FindSuccessor(ft.Start(i))
		if err != nil {
			continue
		}
		ft.slots[i] = succ
	}
}

// fixNext refreshes exactly the slot at the cursor, then advances the
// cursor and wraps 1 -> m -> 1. Reports whether the refreshed slot changed.
func (ft *FingerTable) fixNext() bool {
	i := ft.next
	ft.next++
	if ft.next > ft.m {
		ft.next = 1
	}

	succ, err := ft.owner.FindSuccessor(ft.Start(i))
	if err != nil {
		return false
	}

	changed := ft.slots[i] != succ
	ft.slots[i] = succ
	return changed
}
