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

/*

InInterval decides whether x lies on the ring interval walked clockwise from
a to b, with inclusiveLeft/inclusiveRight controlling whether a and b
themselves count as members. m is the ring's bit-width, so the space wraps
at 2^m.

It is the sole primitive every topology decision in this package routes
through: find_successor, closest_preceding_finger, stabilize, notify and
join's key migration.
*/
func InInterval(x, a, b uint64, m uint, inclusiveLeft, inclusiveRight bool) bool {
	mask := uint64(1)<<m - 1 // all ones when m = 64

	if a == b {
		// degenerate interval: whole ring if either bound is inclusive,
		// otherwise empty.
		return inclusiveLeft || inclusiveRight
	}

	// rotate the frame so that a sits at 0, then compare in the rotated space.
	shiftedX := (x - a) & mask
	shiftedB := (b - a) & mask

	switch {
	case shiftedX == 0:
		return inclusiveLeft
	case shiftedX == shiftedB:
		return inclusiveRight
	default:
		return shiftedX < shiftedB
	}
}
