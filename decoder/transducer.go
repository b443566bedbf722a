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

// Finite-state transducer that maps channel samples to movement symbols.

package decoder

import (
	"fmt"
	"log"
)

// input is the 2 bit symbol built from one (a, b) channel sample,
// with channel A in the high bit.
type input uint8

const (
	a0b0 input = 0b00
	a0b1 input = 0b01
	a1b0 input = 0b10
	a1b1 input = 0b11
)

const numInputs = 4

func newInput(a, b bool) input {
	var i input
	if a {
		i |= 0b10
	}
	if b {
		i |= 0b01
	}
	return i
}

func (i input) String() string {
	return fmt.Sprintf("%02b", uint8(i))
}

// output is the symbol emitted on each transition.
type output uint8

const (
	outN output = iota // Neutral, no movement
	outF               // Forward, channel A leads channel B
	outR               // Reverse, channel B leads channel A
	outE               // Error sentinel, only present in unreachable rows
)

func (o output) String() string {
	switch o {
	case outN:
		return "N"
	case outF:
		return "F"
	case outR:
		return "R"
	case outE:
		return "E"
	}
	return fmt.Sprintf("output(%d)", uint8(o))
}

// state is the phase of the quadrature cycle the transducer is in.
// The numeric value is the row index into a transition table.
type state uint8

const (
	stN0 state = iota // Neutral: 0/4 cycle
	stF1              // A -> B: 1/4 cycle
	stF2              // A -> B: 2/4 cycle
	stF3              // A -> B: 3/4 cycle
	stR1              // B -> A: 1/4 cycle
	stR2              // B -> A: 2/4 cycle
	stR3              // B -> A: 3/4 cycle
	stN2              // Neutral: 2/4 cycle
)

const numStates = 8

var stateNames = [numStates]string{"N0", "F1", "F2", "F3", "R1", "R2", "R3", "N2"}

func (s state) String() string {
	if s < numStates {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// transition is one cell of a transition table.
type transition struct {
	next state
	out  output
}

// table is a complete transition table, indexed by [state][input].
type table struct {
	name  string
	ppc   int // Pulses per cycle
	cells [numStates][numInputs]transition
}

// transducer walks a transition table one input at a time.
type transducer struct {
	state state
	table *table
}

const initialState = stN0

func newTransducer(t *table) transducer {
	return transducer{state: initialState, table: t}
}

// step advances the transducer and returns the output of the transition taken.
// An error sentinel output means the table is malformed, and is fatal.
func (t *transducer) step(in input) output {
	tr := t.table.cells[t.state][in]
	if tr.out == outE {
		log.Panicf("decoder: %s table emitted error output in state %s on input %s", t.table.name, t.state, in)
	}
	t.state = tr.next
	return tr.out
}

// reset returns the transducer to its initial state.
func (t *transducer) reset() {
	t.state = initialState
}
