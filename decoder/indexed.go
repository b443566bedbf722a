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

// Counting decoder with an index channel.

package decoder

// IndexedDecoder is an IncrementalDecoder that also watches an index
// channel, and sets the position to 0 on each rising edge of the index.
type IndexedDecoder[T Counter] struct {
	inc   IncrementalDecoder[T]
	index IndexDecoder
}

// NewIndexedDecoder creates an IndexedDecoder for the step mode,
// with the position set to 0.
func NewIndexedDecoder[T Counter](mode StepMode) *IndexedDecoder[T] {
	d := new(IndexedDecoder[T])
	d.inc.dec.init(mode)
	return d
}

// Update processes one sample of the a, b and z channels.
// Any movement is applied to the position first; if z has a rising
// edge the position is then set to exactly 0. The index does not
// affect the returned movement or error.
func (d *IndexedDecoder[T]) Update(a, b, z bool) (Movement, error) {
	m, err := d.inc.Update(a, b)
	if d.index.Update(z) {
		d.inc.SetCounter(0)
	}
	return m, err
}

// Reset returns the decoder to its initial state and the position to 0.
func (d *IndexedDecoder[T]) Reset() {
	d.inc.Reset()
	d.index.Reset()
}

// Position returns the position relative to the last index pulse,
// or to the initial position if no index pulse has been seen.
func (d *IndexedDecoder[T]) Position() T {
	return d.inc.Counter()
}

// SetPosition sets the position without altering the decoding state.
func (d *IndexedDecoder[T]) SetPosition(p T) {
	d.inc.SetCounter(p)
}

// Counter is the same as Position.
func (d *IndexedDecoder[T]) Counter() T {
	return d.inc.Counter()
}

// SetCounter is the same as SetPosition.
func (d *IndexedDecoder[T]) SetCounter(c T) {
	d.inc.SetCounter(c)
}

// Mode returns the decoder's step mode.
func (d *IndexedDecoder[T]) Mode() StepMode {
	return d.inc.Mode()
}

// PulsesPerCycle returns the number of counts per quadrature cycle.
func (d *IndexedDecoder[T]) PulsesPerCycle() int {
	return d.inc.PulsesPerCycle()
}

func (d *IndexedDecoder[T]) SetReversed(r bool) {
	d.inc.SetReversed(r)
}

func (d *IndexedDecoder[T]) Reversed() bool {
	return d.inc.Reversed()
}
