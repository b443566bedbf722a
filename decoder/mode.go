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

// Step modes.

package decoder

import (
	"fmt"
	"log"
	"strings"
)

// StepMode selects how many movements are reported per quadrature cycle.
// A step mode is fixed for the lifetime of a decoder.
type StepMode int

const (
	// FullStep reports one movement per cycle. It needs four consistent
	// quarter transitions per movement, giving the most noise resistance
	// and the least resolution.
	FullStep StepMode = iota
	// HalfStep reports two movements per cycle.
	HalfStep
	// QuadStep reports a movement on every valid quarter transition,
	// giving the most resolution and the least noise resistance.
	QuadStep
)

var modeNames = map[string]StepMode{
	"full": FullStep,
	"half": HalfStep,
	"quad": QuadStep,
}

// ParseStepMode returns the step mode named by s, one of full, half or quad.
func ParseStepMode(s string) (StepMode, error) {
	m, ok := modeNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown step mode %q", s)
	}
	return m, nil
}

// PulsesPerCycle returns the number of movements reported per quadrature cycle.
// e.g an encoder with 100 cycles per revolution yields 400 pulses
// per revolution in quad step mode.
func (m StepMode) PulsesPerCycle() int {
	return m.table().ppc
}

func (m StepMode) String() string {
	switch m {
	case FullStep:
		return "full"
	case HalfStep:
		return "half"
	case QuadStep:
		return "quad"
	}
	return fmt.Sprintf("StepMode(%d)", int(m))
}

func (m StepMode) table() *table {
	switch m {
	case FullStep:
		return fullStep
	case HalfStep:
		return halfStep
	case QuadStep:
		return quadStep
	}
	log.Panicf("decoder: unknown step mode %d", int(m))
	return nil
}
