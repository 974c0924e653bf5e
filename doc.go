/*

Package ring implements the core of a Chord distributed hash table: an
in-memory simulation of a ring-structured peer-to-peer key lookup
system. It provides identifier-space routing (find_successor),
finger-table maintenance, and ring-membership protocols (join, leave,
stabilize, notify, fix_fingers) over a fixed-size identifier ring.

This is an in-process simulation - nodes are plain *Node values linked
by direct references, there is no network transport, serialization, or
persistence. Callers are responsible for sequencing operations (there is
no concurrent mutation from multiple goroutines) and for periodically
driving Stabilize/FixFingers or the ring-wide StabilizeNetwork/
FixAllFingers helpers after any Join or Leave.
*/
package ring
