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

// Timing diagram of a sample sequence.

package simulator

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
)

const (
	sampleWidth = 20 // Pixels per sample
	traceHeight = 30 // Height of one channel trace
	traceGap    = 20 // Space between traces
	labelWidth  = 30
)

// Plot draws the A, B and Z channels of the samples as a timing diagram.
func Plot(samples []Sample) image.Image {
	width := labelWidth + sampleWidth*(len(samples)+1)
	height := 3*(traceHeight+traceGap) + traceGap
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.Clear()
	channels := []struct {
		name string
		get  func(Sample) bool
	}{
		{"A", func(s Sample) bool { return s.A }},
		{"B", func(s Sample) bool { return s.B }},
		{"Z", func(s Sample) bool { return s.Z }},
	}
	for i, ch := range channels {
		base := float64(traceGap + i*(traceHeight+traceGap) + traceHeight)
		c.SetRGB(0, 0, 0)
		c.DrawString(ch.name, 8, base-traceHeight/2)
		c.SetRGB(0, 0, 1)
		c.SetLineWidth(2)
		drawTrace(c, samples, ch.get, base)
	}
	return c.Image()
}

// WritePlot draws the samples as a timing diagram, and writes it as a PNG image.
func WritePlot(w io.Writer, samples []Sample) error {
	c := gg.NewContextForImage(Plot(samples))
	if err := c.EncodePNG(w); err != nil {
		return fmt.Errorf("plot: %v", err)
	}
	return nil
}

func drawTrace(c *gg.Context, samples []Sample, get func(Sample) bool, base float64) {
	level := func(v bool) float64 {
		if v {
			return base - traceHeight
		}
		return base
	}
	x := float64(labelWidth)
	if len(samples) == 0 {
		c.DrawLine(x, base, x+sampleWidth, base)
		c.Stroke()
		return
	}
	y := level(get(samples[0]))
	c.MoveTo(x, y)
	for _, s := range samples {
		ny := level(get(s))
		c.LineTo(x, ny)
		x += sampleWidth
		c.LineTo(x, ny)
		y = ny
	}
	c.LineTo(x+sampleWidth, y)
	c.Stroke()
}
