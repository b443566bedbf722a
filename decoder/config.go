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
	"fmt"
	"strconv"

	"github.com/aamcrae/config"
)

// Config holds the decoder settings for one encoder, read from a
// configuration file.
type Config struct {
	Name     string
	Mode     StepMode
	Reversed bool // Report movements in the opposite direction
	Cycles   int  // Quadrature cycles per revolution, 0 if unknown
}

// ParseConfig reads and validates a decoder config from a config file section.
// Sample config:
//
//	[spindle]       # name of the encoder
//	mode=quad       # step mode: full, half or quad
//	reverse=true    # optional, reverse the direction of movement
//	cycles=100      # optional, quadrature cycles per revolution
func ParseConfig(conf *config.Config, name string) (*Config, error) {
	s := conf.GetSection(name)
	if s == nil {
		return nil, fmt.Errorf("no config for %s", name)
	}
	var c Config
	c.Name = name
	m, err := s.GetArg("mode")
	if err != nil {
		return nil, fmt.Errorf("mode: %v", err)
	}
	c.Mode, err = ParseStepMode(m)
	if err != nil {
		return nil, fmt.Errorf("mode: %v", err)
	}
	// The remaining keys are optional.
	if r, err := s.GetArg("reverse"); err == nil {
		c.Reversed, err = strconv.ParseBool(r)
		if err != nil {
			return nil, fmt.Errorf("reverse: %v", err)
		}
	}
	if _, err := s.GetArg("cycles"); err == nil {
		n, err := s.Parse("cycles", "%d", &c.Cycles)
		if err != nil {
			return nil, fmt.Errorf("cycles: %v", err)
		}
		if n != 1 {
			return nil, fmt.Errorf("cycles: argument count")
		}
		if c.Cycles < 0 {
			return nil, fmt.Errorf("cycles: must not be negative")
		}
	}
	return &c, nil
}

// Decoder creates a Decoder from the config.
func (c *Config) Decoder() *Decoder {
	d := NewDecoder(c.Mode)
	d.SetReversed(c.Reversed)
	return d
}

// IncrementalFromConfig creates an IncrementalDecoder from the config.
func IncrementalFromConfig[T Counter](c *Config) *IncrementalDecoder[T] {
	d := NewIncrementalDecoder[T](c.Mode)
	d.SetReversed(c.Reversed)
	return d
}

// IndexedFromConfig creates an IndexedDecoder from the config.
func IndexedFromConfig[T Counter](c *Config) *IndexedDecoder[T] {
	d := NewIndexedDecoder[T](c.Mode)
	d.SetReversed(c.Reversed)
	return d
}

// PulsesPerRevolution returns the number of counts in one revolution,
// or 0 if the cycles per revolution is not configured.
func (c *Config) PulsesPerRevolution() int {
	return c.Cycles * c.Mode.PulsesPerCycle()
}

// Revolutions converts a count into revolutions.
func (c *Config) Revolutions(count int64) float64 {
	ppr := c.PulsesPerRevolution()
	if ppr == 0 {
		return 0
	}
	return float64(count) / float64(ppr)
}
