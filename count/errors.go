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
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrMergeWithSelf        = errors.New("cannot merge sketch with itself")
	ErrIncompatibleSketches = errors.New("sketches are incompatible")
)

// InvalidArgumentError reports a construction parameter outside its domain.
// It matches ErrInvalidArgument under errors.Is.
type InvalidArgumentError struct {
	Param  string
	Value  any
	Reason string
}

func newInvalidArgument(param string, value any, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Param: param, Value: value, Reason: reason}
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%v: %s (%s: %v)", ErrInvalidArgument, e.Reason, e.Param, e.Value)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
