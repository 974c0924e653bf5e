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

import (
	"crypto/sha1"
	"hash"

	"go.uber.org/zap"
)

// Option configures a Node at construction time.
type Option func(node *Node)

// WithM8 configures the node's ring bit-width m=8, so the identifier space is 2^8.
func WithM8() Option {
	return func(node *Node) { node.m = 8 }
}

// WithM16 configures the node's ring bit-width m=16, so the identifier space is 2^16.
func WithM16() Option {
	return func(node *Node) { node.m = 16 }
}

// WithM32 configures the node's ring bit-width m=32, so the identifier space is 2^32.
func WithM32() Option {
	return func(node *Node) { node.m = 32 }
}

// WithM64 configures the node's ring bit-width m=64, so the identifier space is 2^64.
func WithM64() Option {
	return func(node *Node) { node.m = 64 }
}

// WithHasher configures the hash algorithm used by NewFromKey to fold an
// opaque key into an identifier.
func WithHasher(f func() hash.Hash) Option {
	return func(node *Node) { node.hasher = f }
}

// WithLogger configures the structured logger used for membership and
// diagnostic events. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(node *Node) { node.log = l }
}

// Options turns a list of Option instances into a single Option.
func Options(opts ...Option) Option {
	return func(node *Node) {
		for _, opt := range opts {
			opt(node)
		}
	}
}

// DefaultOptions is m=8, SHA-1 hashing, no logging.
var DefaultOptions = Options(
	WithM8(),
	WithHasher(sha1.New),
	WithLogger(zap.NewNop()),
)
