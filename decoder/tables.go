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

// Static transition tables, one per step mode.

package decoder

import (
	"fmt"
	"log"
)

func tr(s state, o output) transition {
	return transition{next: s, out: o}
}

// Every cell of a row that the step mode never enters.
var unused = [numInputs]transition{tr(stN0, outE), tr(stN0, outE), tr(stN0, outE), tr(stN0, outE)}

// Full step: one movement per cycle, emitted when the fourth
// consistent quarter transition returns the channels to 11.
//
//	      01        00        10        11
//	N0 ─────▶ F1 ─────▶ F2 ─────▶ F3 ─────▶ N0  emits F
//	N0 ─────▶ R1 ─────▶ R2 ─────▶ R3 ─────▶ N0  emits R
//	      10        00        01        11
var fullStep = mustTable("full step", 1, [numStates][numInputs]transition{
	// columns: 00, 01, 10, 11
	stN0: {tr(stN0, outN), tr(stF1, outN), tr(stR1, outN), tr(stN0, outN)},
	stF1: {tr(stF2, outN), tr(stF1, outN), tr(stN0, outN), tr(stN0, outN)},
	stF2: {tr(stF2, outN), tr(stF1, outN), tr(stF3, outN), tr(stN0, outN)},
	stF3: {tr(stF2, outN), tr(stN0, outN), tr(stF3, outN), tr(stN0, outF)},
	stR1: {tr(stR2, outN), tr(stN0, outN), tr(stR1, outN), tr(stN0, outN)},
	stR2: {tr(stR2, outN), tr(stR3, outN), tr(stR1, outN), tr(stN0, outN)},
	stR3: {tr(stR2, outN), tr(stR3, outN), tr(stN0, outN), tr(stN0, outR)},
	stN2: unused,
})

// Half step: two movements per cycle, emitted on reaching 00 (N2)
// and on returning to 11 (N0).
var halfStep = mustTable("half step", 2, [numStates][numInputs]transition{
	// columns: 00, 01, 10, 11
	stN0: {tr(stN2, outN), tr(stF1, outN), tr(stR1, outN), tr(stN0, outN)},
	stF1: {tr(stN2, outF), tr(stF1, outN), tr(stN0, outN), tr(stN0, outN)},
	stF2: unused,
	stF3: {tr(stN2, outN), tr(stN2, outN), tr(stF3, outN), tr(stN0, outF)},
	stR1: {tr(stN2, outR), tr(stN0, outN), tr(stR1, outN), tr(stN0, outN)},
	stR2: unused,
	stR3: {tr(stN2, outN), tr(stR3, outN), tr(stN2, outN), tr(stN0, outR)},
	stN2: {tr(stN2, outN), tr(stR3, outN), tr(stF3, outN), tr(stN0, outN)},
})

// Quad step: a movement on every valid quarter transition.
var quadStep = mustTable("quad step", 4, [numStates][numInputs]transition{
	// columns: 00, 01, 10, 11
	stN0: {tr(stN2, outN), tr(stF1, outF), tr(stR1, outR), tr(stN0, outN)},
	stF1: {tr(stN2, outF), tr(stF1, outN), tr(stN0, outN), tr(stN0, outR)},
	stF2: {tr(stN2, outR), tr(stN2, outN), tr(stF2, outN), tr(stN0, outF)},
	stF3: unused,
	stR1: {tr(stN2, outR), tr(stN0, outN), tr(stR1, outN), tr(stN0, outF)},
	stR2: {tr(stN2, outF), tr(stR2, outN), tr(stN2, outN), tr(stN0, outR)},
	stR3: unused,
	stN2: {tr(stN2, outN), tr(stR2, outR), tr(stF2, outF), tr(stN0, outN)},
})

// mustTable builds a table and checks it, panicking if it is malformed.
func mustTable(name string, ppc int, cells [numStates][numInputs]transition) *table {
	tb := &table{name: name, ppc: ppc, cells: cells}
	if err := tb.check(); err != nil {
		log.Panicf("decoder: %v", err)
	}
	return tb
}

// check verifies that every cell holds a valid state and output,
// and that no state reachable from the initial state, under any
// sequence of inputs, can emit the error sentinel.
func (tb *table) check() error {
	for s := state(0); s < numStates; s++ {
		for in := input(0); in < numInputs; in++ {
			c := tb.cells[s][in]
			if c.next >= numStates {
				return fmt.Errorf("%s: %s/%s: invalid next state %d", tb.name, s, in, c.next)
			}
			if c.out > outE {
				return fmt.Errorf("%s: %s/%s: invalid output %d", tb.name, s, in, c.out)
			}
		}
	}
	for s, ok := range tb.reachable() {
		if !ok {
			continue
		}
		for in, c := range tb.cells[s] {
			if c.out == outE {
				return fmt.Errorf("%s: reachable state %s emits error on input %s", tb.name, state(s), input(in))
			}
		}
	}
	return nil
}

// reachable returns the set of states that can be entered from the
// initial state.
func (tb *table) reachable() [numStates]bool {
	var seen [numStates]bool
	seen[initialState] = true
	queue := []state{initialState}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, c := range tb.cells[s] {
			if !seen[c.next] {
				seen[c.next] = true
				queue = append(queue, c.next)
			}
		}
	}
	return seen
}
