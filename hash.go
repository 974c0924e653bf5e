/*

  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved

  Licensed under the Apache License, Version 2.0 (the "License");
  you may not use this file except in compliance with the License.
  You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.

*/

package ring

// NewFromKey hashes an opaque key (hostname, IP, UUID) into the ring's
// identifier space using the configured hasher, then constructs a Node
// with that identifier: hash the key, fold the digest down to an
// address, so arbitrary node identities become Chord identifiers
// without the caller picking a numeric id by hand.
func NewFromKey(key string, opts ...Option) *Node {
	node := New(0, opts...)
	node.id = node.address(key)
	return node
}

// address folds a hash digest of key down to an identifier in [0, 2^m),
// reading the low m/8 bytes of the digest little-endian.
func (n *Node) address(key string) uint64 {
	digest := n.hash(key)

	nbytes := int(n.m / 8)
	if nbytes < 1 {
		nbytes = 1
	}
	if nbytes > len(digest) {
		nbytes = len(digest)
	}

	addr := uint64(digest[0])
	for i := 1; i < nbytes; i++ {
		addr |= uint64(digest[i]) << (8 * uint(i))
	}

	mask := uint64(1)<<n.m - 1 // all ones when m = 64
	return addr & mask
}

// hash runs the configured hasher over key and returns the digest.
func (n *Node) hash(key string) []byte {
	h := n.hasher()
	h.Write([]byte(key))
	return h.Sum(nil)
}
