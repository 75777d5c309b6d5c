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

package internal

// combineMul is the multiplier of the Murmur-inspired 128 to 64 bit mixer.
const combineMul = uint64(0x9ddfea08eb382d69)

// HashInt is Bob Jenkins' reversible 32-bit integer mix. It maps 0 to 0 and
// is a bijection, so distinct inputs never collide.
func HashInt(key uint32) uint32 {
	key += key << 12
	key ^= key >> 22
	key += key << 4
	key ^= key >> 9
	key += key << 10
	key ^= key >> 2
	key += key << 7
	key += key << 12
	return key
}

// CombineHashes mixes two 64-bit hashes into one. The result depends on the
// order of the arguments.
func CombineHashes(upper, lower uint64) uint64 {
	a := (lower ^ upper) * combineMul
	a ^= a >> 47
	b := (upper ^ a) * combineMul
	b ^= b >> 47
	b *= combineMul
	return b
}
