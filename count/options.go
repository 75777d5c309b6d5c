/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package count

import (
	"github.com/cespare/xxhash/v2"
	"github.com/twmb/murmur3"
)

// KeyHasher maps a byte key onto the 64-bit key space of the sketch.
type KeyHasher func(key []byte) uint64

// XXHasher is the default KeyHasher.
var XXHasher KeyHasher = xxhash.Sum64

// Murmur3Hasher returns a KeyHasher computing the seeded 64-bit murmur3 hash
// of the key.
func Murmur3Hasher(seed uint64) KeyHasher {
	return func(key []byte) uint64 {
		return murmur3.SeedSum64(seed, key)
	}
}

// options holds optional parameters for sketch construction.
type options struct {
	hasher KeyHasher
}

// Option is a functional option for configuring a CountMinSketch.
type Option func(*options)

// WithKeyHasher sets the hash used by the string and byte slice methods.
// A nil hasher keeps the default.
func WithKeyHasher(h KeyHasher) Option {
	return func(opts *options) {
		if h != nil {
			opts.hasher = h
		}
	}
}

func applyOptions(opts []Option) *options {
	o := &options{
		hasher: XXHasher,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
