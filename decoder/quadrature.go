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

// Package decoder converts sampled quadrature channels into movements
// and position counts.
//
// Samples are expected to be clean logic levels read from the A and B
// (and optionally index) channels of an encoder, one coherent read per
// Update call. Decoders are not safe for concurrent use, and Update
// neither blocks nor allocates.
package decoder

// Decoder is a quadrature decoder for a single step mode.
// It combines a transducer, which tracks the phase of the quadrature
// cycle and reports movement, with a validator, which rejects samples
// where both channels changed at once.
//
//	        ┌───┐   ┌───┐   ┌───┐
//	A       │   │   │   │   │   │      Forward: A leads B
//	    ────┘   └───┘   └───┘   └──
//	          ┌───┐   ┌───┐   ┌───┐
//	B         │   │   │   │   │   │
//	    ──────┘   └───┘   └───┘   └
type Decoder struct {
	mode     StepMode
	fst      transducer
	valid    validator
	reversed bool // Report movements in the opposite direction
}

// NewDecoder creates a Decoder for the step mode.
func NewDecoder(mode StepMode) *Decoder {
	d := new(Decoder)
	d.init(mode)
	return d
}

func (d *Decoder) init(mode StepMode) {
	d.mode = mode
	d.fst = newTransducer(mode.table())
	d.valid = newValidator()
}

// Update processes one sample of the a and b channels.
// It returns the movement detected, None if there was no movement,
// or an Error (with None) if the sample is not a valid successor of
// the previous one. Callers that do not care why no movement was seen
// may ignore the error.
func (d *Decoder) Update(a, b bool) (Movement, error) {
	in := newInput(a, b)
	// Both run on every sample so that the transducer keeps following
	// the channels after a bad sample.
	err := d.valid.validate(in)
	out := d.fst.step(in)
	if err != nil {
		return None, err
	}
	var m Movement
	switch out {
	case outF:
		m = Forward
	case outR:
		m = Reverse
	default:
		return None, nil
	}
	if d.reversed {
		m = m.Flipped()
	}
	return m, nil
}

// Reset returns the decoder to its initial state.
// The reversed setting is kept.
func (d *Decoder) Reset() {
	d.fst.reset()
	d.valid.reset()
}

// Mode returns the decoder's step mode.
func (d *Decoder) Mode() StepMode {
	return d.mode
}

// PulsesPerCycle returns the number of movements reported per quadrature cycle.
func (d *Decoder) PulsesPerCycle() int {
	return d.fst.table.ppc
}

// SetReversed sets whether movements are reported in the opposite direction.
func (d *Decoder) SetReversed(r bool) {
	d.reversed = r
}

// Reversed returns true if movements are reported in the opposite direction.
func (d *Decoder) Reversed() bool {
	return d.reversed
}
