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

// Gray code validation of raw channel samples.

package decoder

// The identity input of the transducer's initial state (N0), i.e the
// input that leaves it unchanged. Starting from this value means the
// first real sample is never misjudged.
const initialInput = a1b1

// validator checks that consecutive samples differ in at most one
// channel. It tracks raw samples only, independent of the transducer
// state, since the transducer's states encode cycle phase and cannot
// tell a re-entered phase from a diagonal jump.
type validator struct {
	last input
}

func newValidator() validator {
	return validator{last: initialInput}
}

// validate records the input and returns an Error if both channels
// changed since the previous input.
func (v *validator) validate(in input) error {
	last := v.last
	v.last = in
	if (last^in) == 0b11 {
		return Error(last<<2 | in)
	}
	return nil
}

func (v *validator) reset() {
	v.last = initialInput
}
