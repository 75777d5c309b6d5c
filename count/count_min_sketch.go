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

// Package count provides a Count-Min Sketch with saturating counters, sized
// for cache admission and hot key detection.
//
// The sketch never undercounts a key until one of the key's cells saturates.
// It is not safe for concurrent use; callers must serialize access.
package count

import (
	"fmt"
	"math/bits"

	"github.com/cachelib-go/countmin/internal"
	"golang.org/x/exp/constraints"
)

// CountMinSketch is a depth x width table of counters of type T. A key is
// counted in one cell per row and its estimate is the smallest of those
// cells. Increments past the maximum value of T are dropped.
//
// Always use a sketch through a pointer. Copying the struct would alias the
// table; use Clone for an independent copy and Move to hand the table over.
type CountMinSketch[T constraints.Unsigned] struct {
	noCopy noCopy

	width     uint32
	depth     uint32
	saturated uint64
	table     []T // row-major, depth*width cells
	hasher    KeyHasher
}

type (
	CountMinSketch8  = CountMinSketch[uint8]
	CountMinSketch16 = CountMinSketch[uint16]
	CountMinSketch32 = CountMinSketch[uint32]
	CountMinSketch64 = CountMinSketch[uint64]
)

// NewCountMinSketch creates a zeroed sketch with explicit dimensions.
func NewCountMinSketch[T constraints.Unsigned](width, depth uint32, opts ...Option) (*CountMinSketch[T], error) {
	if width == 0 {
		return nil, newInvalidArgument("width", width, "width must be greater than 0")
	}
	if depth == 0 {
		return nil, newInvalidArgument("depth", depth, "depth must be greater than 0")
	}
	if size := uint64(width) * uint64(depth); size > MaxTableSize {
		return nil, newInvalidArgument("width*depth", size, fmt.Sprintf("table must not exceed %d cells", MaxTableSize))
	}

	o := applyOptions(opts)
	return &CountMinSketch[T]{
		width:  width,
		depth:  depth,
		table:  make([]T, uint64(width)*uint64(depth)),
		hasher: o.hasher,
	}, nil
}

// NewCountMinSketchByAccuracy creates a sketch whose estimates exceed the true
// count by at most errorRate times the total number of increments, with the
// given probability. Non-zero maxWidth and maxDepth cap the dimensions, which
// loosens the guarantee accordingly.
func NewCountMinSketchByAccuracy[T constraints.Unsigned](errorRate, probability float64, maxWidth, maxDepth uint32, opts ...Option) (*CountMinSketch[T], error) {
	width, err := SuggestWidth(errorRate, maxWidth)
	if err != nil {
		return nil, err
	}
	depth, err := SuggestDepth(probability, maxDepth)
	if err != nil {
		return nil, err
	}
	return NewCountMinSketch[T](width, depth, opts...)
}

func (c *CountMinSketch[T]) Width() uint32 {
	return c.width
}

func (c *CountMinSketch[T]) Depth() uint32 {
	return c.depth
}

// ByteSize returns the memory held by the counter table.
func (c *CountMinSketch[T]) ByteSize() uint64 {
	return uint64(c.width) * uint64(c.depth) * uint64(counterBits[T]()/8)
}

// MaxCount returns the value at which a counter saturates.
func (c *CountMinSketch[T]) MaxCount() T {
	return ^T(0)
}

// SaturatedCounts returns how many cells have reached MaxCount since the last
// Reset. Cells lowered by ResetCount or DecayCountsBy stay counted.
func (c *CountMinSketch[T]) SaturatedCounts() uint64 {
	return c.saturated
}

// Increment records one observation of key.
func (c *CountMinSketch[T]) Increment(key uint64) {
	maxCount := c.MaxCount()
	for row := uint32(0); row < c.depth; row++ {
		i := c.getIndex(row, key)
		if c.table[i] < maxCount {
			c.table[i]++
			if c.table[i] == maxCount {
				c.saturated++
			}
		}
	}
}

// GetCount returns the estimated number of observations of key. The estimate
// is never below the true count unless a cell of key has saturated.
func (c *CountMinSketch[T]) GetCount(key uint64) T {
	if c.depth == 0 {
		return 0
	}

	count := c.MaxCount()
	for row := uint32(0); row < c.depth; row++ {
		count = Min(count, c.table[c.getIndex(row, key)])
	}
	return count
}

// ResetCount subtracts the current estimate of key from each of its cells.
// This is approximate: a key sharing a cell with key loses the same amount
// in that row.
func (c *CountMinSketch[T]) ResetCount(key uint64) {
	count := c.GetCount(key)
	if count == 0 {
		return
	}
	for row := uint32(0); row < c.depth; row++ {
		c.table[c.getIndex(row, key)] -= count
	}
}

// DecayCountsBy multiplies every counter by decay, rounding down. Results are
// clamped to [0, MaxCount]; a NaN product becomes 0.
func (c *CountMinSketch[T]) DecayCountsBy(decay float64) {
	maxCount := c.MaxCount()
	limit := float64(maxCount)
	for i, v := range c.table {
		scaled := float64(v) * decay
		switch {
		case !(scaled > 0):
			c.table[i] = 0
		case scaled >= limit:
			if v != maxCount {
				c.saturated++
			}
			c.table[i] = maxCount
		default:
			c.table[i] = T(scaled)
		}
	}
}

// Reset zeroes every counter and the saturation count.
func (c *CountMinSketch[T]) Reset() {
	clear(c.table)
	c.saturated = 0
}

// Merge adds the counters of other into c, saturating at MaxCount. Both
// sketches must have the same dimensions.
func (c *CountMinSketch[T]) Merge(other *CountMinSketch[T]) error {
	if c == other {
		return ErrMergeWithSelf
	}
	if other == nil || c.width != other.width || c.depth != other.depth {
		return ErrIncompatibleSketches
	}

	maxCount := c.MaxCount()
	for i, v := range other.table {
		cur := c.table[i]
		if cur == maxCount || v == 0 {
			continue
		}
		if v >= maxCount-cur {
			c.table[i] = maxCount
			c.saturated++
			continue
		}
		c.table[i] = cur + v
	}
	return nil
}

// Clone returns a deep copy of the sketch.
func (c *CountMinSketch[T]) Clone() *CountMinSketch[T] {
	table := make([]T, len(c.table))
	copy(table, c.table)
	return &CountMinSketch[T]{
		width:     c.width,
		depth:     c.depth,
		saturated: c.saturated,
		table:     table,
		hasher:    c.hasher,
	}
}

// Move transfers the table to a new sketch and leaves c empty. An empty sketch
// has zero dimensions, ignores increments and reports a count of 0 for
// every key.
func (c *CountMinSketch[T]) Move() *CountMinSketch[T] {
	moved := &CountMinSketch[T]{
		width:     c.width,
		depth:     c.depth,
		saturated: c.saturated,
		table:     c.table,
		hasher:    c.hasher,
	}
	c.width = 0
	c.depth = 0
	c.saturated = 0
	c.table = nil
	return moved
}

func (c *CountMinSketch[T]) String() string {
	return fmt.Sprintf("CountMinSketch%d{width: %d, depth: %d, bytes: %d, saturated: %d}",
		counterBits[T](), c.width, c.depth, c.ByteSize(), c.saturated)
}

// getIndex returns the cell of key in the given row. Each row seeds the same
// hash with its own row number instead of using a separate hash function.
func (c *CountMinSketch[T]) getIndex(row uint32, key uint64) uint64 {
	col := internal.CombineHashes(uint64(internal.HashInt(row)), key) % uint64(c.width)
	return uint64(row)*uint64(c.width) + col
}

func counterBits[T constraints.Unsigned]() int {
	return bits.Len64(uint64(^T(0)))
}

// noCopy lets go vet's copylocks check flag sketches copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
