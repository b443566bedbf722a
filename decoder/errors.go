// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package decoder

import "fmt"

// Error reports an invalid Gray code sequence, i.e both channels
// changed between two consecutive samples. This means a sample was
// missed or the signal is noisy. The value encodes the previous
// sample in the high 2 bits and the new sample in the low 2 bits.
//
// An Error only concerns the sample that produced it; decoding
// continues normally with the next valid sample.
type Error uint8

const (
	Err00To11 Error = 0b00_11 // Invalid sequence 00 -> 11
	Err11To00 Error = 0b11_00 // Invalid sequence 11 -> 00
	Err01To10 Error = 0b01_10 // Invalid sequence 01 -> 10
	Err10To01 Error = 0b10_01 // Invalid sequence 10 -> 01
)

func (e Error) Error() string {
	return fmt.Sprintf("quadrature: invalid transition %s -> %s", e.from(), e.to())
}

// from returns the sample preceding the jump.
func (e Error) from() input {
	return input(e>>2) & 0b11
}

// to returns the sample that completed the jump.
func (e Error) to() input {
	return input(e) & 0b11
}
