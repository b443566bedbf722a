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

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaturatingAdd(t *testing.T) {
	assert.Equal(t, int8(127), saturatingAdd(int8(127), 1))
	assert.Equal(t, int8(-128), saturatingAdd(int8(-128), -1))
	assert.Equal(t, int8(127), saturatingAdd(int8(100), 100))
	assert.Equal(t, int8(-128), saturatingAdd(int8(-100), -100))
	assert.Equal(t, int8(0), saturatingAdd(int8(-1), 1))
	assert.Equal(t, int16(math.MaxInt16), saturatingAdd(int16(math.MaxInt16), 1))
	assert.Equal(t, int32(math.MinInt32), saturatingAdd(int32(math.MinInt32), -1))
	assert.Equal(t, int64(math.MaxInt64), saturatingAdd(int64(math.MaxInt64-1), 5))
	assert.Equal(t, math.MinInt, saturatingAdd(math.MinInt, -1))
	assert.Equal(t, 42, saturatingAdd(40, 2))
}

func TestLimits(t *testing.T) {
	lo, hi := limits[int8]()
	assert.Equal(t, int8(math.MinInt8), lo)
	assert.Equal(t, int8(math.MaxInt8), hi)
	lo64, hi64 := limits[int64]()
	assert.Equal(t, int64(math.MinInt64), lo64)
	assert.Equal(t, int64(math.MaxInt64), hi64)
}

func TestIncrementalCounts(t *testing.T) {
	for _, mode := range modes {
		d := NewIncrementalDecoder[int32](mode)
		assert.Equal(t, int32(0), d.Counter())
		feed(d, "01 00 10 11 01 00 10 11")
		assert.Equal(t, int32(2*mode.PulsesPerCycle()), d.Counter(), mode.String())
		feed(d, "10 00 01 11")
		assert.Equal(t, int32(mode.PulsesPerCycle()), d.Counter(), mode.String())
	}
}

func TestIncrementalErrorsDoNotCount(t *testing.T) {
	d := NewIncrementalDecoder[int](QuadStep)
	assert.Equal(t, "+ E0110 . + +", feed(d, "01 10 00 10 11"))
	assert.Equal(t, 3, d.Counter())
}

func TestIncrementalSaturates(t *testing.T) {
	d := NewIncrementalDecoder[int8](QuadStep)
	d.SetCounter(126)
	assert.Equal(t, "+ + + +", feed(d, "01 00 10 11"))
	assert.Equal(t, int8(127), d.Counter())
	assert.Equal(t, "- -", feed(d, "10 00"))
	assert.Equal(t, int8(125), d.Counter())

	d.SetCounter(-127)
	feed(d, "01 11 10 00 01 11")
	assert.Equal(t, int8(-128), d.Counter())
}

func TestIncrementalSetCounter(t *testing.T) {
	for _, mode := range modes {
		d := NewIncrementalDecoder[int64](mode)
		// Part way through a cycle, so the next samples complete it.
		feed(d, "01 00 10")
		st := d.dec.fst.state
		d.SetCounter(1000)
		assert.Equal(t, st, d.dec.fst.state)
		m, err := d.Update(true, true)
		assert.NoError(t, err)
		assert.Equal(t, Forward, m, mode.String())
		assert.Equal(t, int64(1001), d.Counter(), mode.String())
	}
}

func TestIncrementalReset(t *testing.T) {
	for _, mode := range modes {
		d := NewIncrementalDecoder[int](mode)
		feed(d, "01 00 10 11 01 00")
		d.Reset()
		assert.Equal(t, 0, d.Counter())
		fresh := NewIncrementalDecoder[int](mode)
		assert.Equal(t, fresh, d)
		seq := "10 00 01 11 11 00 10 00 01"
		assert.Equal(t, feed(fresh, seq), feed(d, seq))
		assert.Equal(t, fresh.Counter(), d.Counter())
	}
}

func TestIncrementalReversed(t *testing.T) {
	d := NewIncrementalDecoder[int](HalfStep)
	d.SetReversed(true)
	assert.True(t, d.Reversed())
	feed(d, "01 00 10 11")
	assert.Equal(t, -2, d.Counter())
	assert.Equal(t, HalfStep, d.Mode())
	assert.Equal(t, 2, d.PulsesPerCycle())
}
