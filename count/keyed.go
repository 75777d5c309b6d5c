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

// The methods below hash the key with the sketch's KeyHasher and then behave
// like their uint64 counterparts.

func (c *CountMinSketch[T]) IncrementString(key string) {
	c.Increment(c.hasher([]byte(key)))
}

func (c *CountMinSketch[T]) GetCountString(key string) T {
	return c.GetCount(c.hasher([]byte(key)))
}

func (c *CountMinSketch[T]) ResetCountString(key string) {
	c.ResetCount(c.hasher([]byte(key)))
}

func (c *CountMinSketch[T]) IncrementBytes(key []byte) {
	c.Increment(c.hasher(key))
}

func (c *CountMinSketch[T]) GetCountBytes(key []byte) T {
	return c.GetCount(c.hasher(key))
}

func (c *CountMinSketch[T]) ResetCountBytes(key []byte) {
	c.ResetCount(c.hasher(key))
}
