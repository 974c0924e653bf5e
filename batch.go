package ring

/*

CollectAllNodes walks the successor chain from start until start is
revisited, returning each unique node in successor order. It holds no
state between calls, so it is trivially safe to call again after the
ring's membership changes (restartable).
*/
func CollectAllNodes(start *Node) []*Node {
	if start == nil {
		return nil
	}

	nodes := []*Node{start}
	for cursor := start.successor; cursor != nil && cursor != start; cursor = cursor.successor {
		nodes = append(nodes, cursor)
	}
	return nodes
}

/*

StabilizeNetwork runs Stabilize on every collected node, for up to rounds
rounds (default: the larger of the collected node count and the ring's
bit-width m). It exits early once a full round changes no node's
successor or predecessor pointer - the "run until no changes in a full
pass" termination criterion, rather than a hard-coded round count.
*/
func StabilizeNetwork(start *Node, rounds ...int) {
	nodes := CollectAllNodes(start)
	if len(nodes) == 0 {
		return
	}

	k := defaultRounds(nodes, rounds)
	for round := 0; round < k; round++ {
		changed := false
		for _, n := range nodes {
			succBefore, predBefore := n.successor, n.predecessor
			_ = n.Stabilize()
			if n.successor != succBefore || n.predecessor != predBefore {
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

/*

FixAllFingers runs FixFingers on every collected node, for up to rounds
rounds (default: the ring's bit-width m, so every node's incremental
cursor completes a full lap). Once m rounds have run, it exits early at
the first round that refreshes no finger slot anywhere; it never stops
before m rounds.
*/
func FixAllFingers(start *Node, rounds ...int) {
	nodes := CollectAllNodes(start)
	if len(nodes) == 0 {
		return
	}

	k := int(nodes[0].m)
	if len(rounds) > 0 && rounds[0] > 0 {
		k = rounds[0]
	}

	for round := 0; round < k; round++ {
		changed := false
		for _, n := range nodes {
			didChange, err := n.FixFingers()
			if err == nil && didChange {
				changed = true
			}
		}
		if !changed && round >= int(nodes[0].m)-1 {
			return
		}
	}
}

/*

DeleteAllNodes collects every node reachable from start, then tears down
each one's ring state and marks it StateLeft. Unlike Leave, it does not
migrate keys node-by-node: the whole ring is being discarded at once, so
walking the successor chain calling Leave in a loop would corrupt the
chain mid-walk. It returns the collected nodes so a driver can drop its
last references to them.
*/
func DeleteAllNodes(start *Node) []*Node {
	nodes := CollectAllNodes(start)
	for _, n := range nodes {
		n.state = StateLeft
		n.successor = nil
		n.predecessor = nil
		n.fingers = nil
		n.keys = nil
	}
	return nodes
}

func defaultRounds(nodes []*Node, rounds []int) int {
	if len(rounds) > 0 && rounds[0] > 0 {
		return rounds[0]
	}

	k := len(nodes)
	if m := int(nodes[0].m); m > k {
		k = m
	}
	return k
}
