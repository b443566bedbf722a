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

// Index (Z channel) edge detection.

package decoder

// IndexDecoder detects the rising edge of an index (Z) channel,
// which is pulsed once per revolution or traversal.
//
//	               ┌─┐
//	Z              │ │
//	    ───────────┘ └──────────
//
// The first sample after construction or Reset is only recorded, so
// an index signal that is already high is not reported as an edge.
type IndexDecoder struct {
	z      bool // Last sample
	primed bool // Set once a sample has been recorded
}

// NewIndexDecoder creates an IndexDecoder whose first Update is compared
// against the known level z.
func NewIndexDecoder(z bool) *IndexDecoder {
	return &IndexDecoder{z: z, primed: true}
}

// Update records the sample and returns true if the channel went
// from low to high since the previous sample.
func (x *IndexDecoder) Update(z bool) bool {
	edge := x.primed && z && !x.z
	x.z = z
	x.primed = true
	return edge
}

// Reset clears the recorded sample.
func (x *IndexDecoder) Reset() {
	x.z = false
	x.primed = false
}
