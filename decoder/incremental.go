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

// Counting decoder.

package decoder

import "unsafe"

// Counter is the set of integer types usable as a position count.
type Counter interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// limits returns the smallest and largest values of T.
func limits[T Counter]() (lo, hi T) {
	var one T = 1
	lo = one << (8*unsafe.Sizeof(one) - 1)
	hi = lo - 1
	return lo, hi
}

// saturatingAdd returns a + b, clamped to the range of T.
func saturatingAdd[T Counter](a, b T) T {
	s := a + b
	lo, hi := limits[T]()
	if b > 0 && s < a {
		return hi
	}
	if b < 0 && s > a {
		return lo
	}
	return s
}

// IncrementalDecoder is a Decoder that keeps a position count.
// Forward movements increment the count and reverse movements
// decrement it. The count saturates at the limits of T.
type IncrementalDecoder[T Counter] struct {
	dec     Decoder
	counter T
}

// NewIncrementalDecoder creates an IncrementalDecoder for the step mode,
// with the count set to 0.
func NewIncrementalDecoder[T Counter](mode StepMode) *IncrementalDecoder[T] {
	d := new(IncrementalDecoder[T])
	d.dec.init(mode)
	return d
}

// Update processes one sample of the a and b channels, adjusting the
// count by any movement detected. The results are the same as for
// Decoder.Update.
func (d *IncrementalDecoder[T]) Update(a, b bool) (Movement, error) {
	m, err := d.dec.Update(a, b)
	if m != None {
		d.counter = saturatingAdd(d.counter, T(m))
	}
	return m, err
}

// Reset returns the decoder to its initial state and the count to 0.
func (d *IncrementalDecoder[T]) Reset() {
	d.dec.Reset()
	d.counter = 0
}

// Counter returns the current count.
func (d *IncrementalDecoder[T]) Counter() T {
	return d.counter
}

// SetCounter sets the count, leaving the decoding state untouched
// e.g for homing.
func (d *IncrementalDecoder[T]) SetCounter(c T) {
	d.counter = c
}

// Mode returns the decoder's step mode.
func (d *IncrementalDecoder[T]) Mode() StepMode {
	return d.dec.Mode()
}

// PulsesPerCycle returns the number of counts per quadrature cycle.
func (d *IncrementalDecoder[T]) PulsesPerCycle() int {
	return d.dec.PulsesPerCycle()
}

// SetReversed sets whether movements are reported, and counted,
// in the opposite direction.
func (d *IncrementalDecoder[T]) SetReversed(r bool) {
	d.dec.SetReversed(r)
}

// Reversed returns true if movements are reported in the opposite direction.
func (d *IncrementalDecoder[T]) Reversed() bool {
	return d.dec.Reversed()
}
