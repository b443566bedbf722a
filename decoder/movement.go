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

// Movement is the direction reported by a decoder. The value is the
// signed unit it contributes to a position count.
type Movement int8

const (
	None    Movement = 0  // No movement detected
	Forward Movement = 1  // Channel A leads channel B
	Reverse Movement = -1 // Channel B leads channel A
)

// Flipped returns the movement in the opposite direction.
func (m Movement) Flipped() Movement {
	return -m
}

func (m Movement) String() string {
	switch m {
	case None:
		return "none"
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	}
	return "invalid"
}
