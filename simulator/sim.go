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

// Package simulator generates the channel signals of a quadrature
// encoder, for driving decoders without hardware.
package simulator

// Sample is one coherent read of the encoder channels.
type Sample struct {
	A, B bool // Quadrature channels
	Z    bool // Index channel
}

// Channel levels for each quarter phase of a cycle. Increasing phase
// gives the forward sequence 11, 01, 00, 10.
var levels = [4]Sample{
	{A: true, B: true},
	{A: false, B: true},
	{A: false, B: false},
	{A: true, B: false},
}

// Encoder simulates a quadrature encoder as a count of quarter phases.
// Moving forward by one quarter changes exactly one channel.
// If an index is configured, Z is high for one quarter per revolution,
// at the mark location.
type Encoder struct {
	phase  int64 // Current location in quarter phases
	cycles int64 // Cycles per revolution, 0 for no index
	mark   int64 // Location of the index within a revolution, in quarters
}

// New creates a simulated encoder at phase 0 (both channels high).
// cycles is the number of quadrature cycles per revolution, and
// mark is the quarter within the revolution where the index is high.
// An index is only generated if cycles is greater than 0.
func New(cycles, mark int) *Encoder {
	e := new(Encoder)
	e.cycles = int64(cycles)
	if cycles > 0 {
		e.mark = mod(int64(mark), 4*e.cycles)
	}
	return e
}

// Sample returns the channel levels at the current location.
func (e *Encoder) Sample() Sample {
	s := levels[mod(e.phase, 4)]
	if e.cycles > 0 {
		s.Z = mod(e.phase, 4*e.cycles) == e.mark
	}
	return s
}

// Move acts like a moving shaft, stepping one quarter phase at a time
// and sampling the channels after each step. A negative count moves
// in reverse.
func (e *Encoder) Move(quarters int) []Sample {
	var inc int64 = 1
	if quarters < 0 {
		inc = -1
		quarters = -quarters
	}
	samples := make([]Sample, 0, quarters)
	for i := 0; i < quarters; i++ {
		e.phase += inc
		samples = append(samples, e.Sample())
	}
	return samples
}

// Skip moves without sampling the intermediate locations, as happens
// when a sampler misses edges, and returns the sample at the new location.
func (e *Encoder) Skip(quarters int) Sample {
	e.phase += int64(quarters)
	return e.Sample()
}

// Phase returns the current location in quarter phases.
func (e *Encoder) Phase() int64 {
	return e.phase
}

// Cycles returns the number of whole cycles from the start location.
func (e *Encoder) Cycles() int64 {
	return floorDiv(e.phase, 4)
}

func mod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func floorDiv(a, b int64) int64 {
	return (a - mod(a, b)) / b
}
