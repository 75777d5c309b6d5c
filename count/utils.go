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
	"math"

	"golang.org/x/exp/constraints"
)

// MaxTableSize is the largest number of cells a sketch may hold.
const MaxTableSize = uint64(1) << 31

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// SuggestWidth returns the number of columns per row needed so that an
// estimate exceeds the true count by at most errorRate times the total number
// of increments. A non-zero maxWidth caps the result.
//
// The bound is from "Approximating Data with the Count-Min Data Structure"
// (Cormode & Muthukrishnan).
func SuggestWidth(errorRate float64, maxWidth uint32) (uint32, error) {
	if !(errorRate > 0 && errorRate < 1) {
		return 0, newInvalidArgument("error", errorRate, "error should be greater than 0 and less than 1")
	}

	w := math.Ceil(2 / errorRate)
	width := uint32(math.MaxUint32)
	if w < math.MaxUint32 {
		width = uint32(w)
	}
	if maxWidth > 0 {
		width = Min(maxWidth, width)
	}
	return width, nil
}

// SuggestDepth returns the number of rows needed for the error bound of
// SuggestWidth to hold with the given probability. A non-zero maxDepth caps
// the result.
func SuggestDepth(probability float64, maxDepth uint32) (uint32, error) {
	if !(probability > 0 && probability < 1) {
		return 0, newInvalidArgument("probability", probability, "probability should be greater than 0 and less than 1")
	}

	d := math.Ceil(math.Abs(math.Log(1-probability) / math.Ln2))
	depth := uint32(math.MaxUint32)
	if d < math.MaxUint32 {
		depth = uint32(d)
	}
	depth = max(1, depth)
	if maxDepth > 0 {
		depth = Min(maxDepth, depth)
	}
	return depth, nil
}
