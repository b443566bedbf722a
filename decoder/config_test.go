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
	"os"
	"path/filepath"
	"testing"

	"github.com/aamcrae/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[spindle]
mode=quad
reverse=true
cycles=100

[wheel]
mode=half

[table]
mode=Full
cycles=25

[nomode]
cycles=10

[badmode]
mode=octo

[badreverse]
mode=full
reverse=maybe

[badcycles]
mode=full
cycles=-3
`

func parseTestConfig(t *testing.T) *config.Config {
	f := filepath.Join(t.TempDir(), "encoders.conf")
	require.NoError(t, os.WriteFile(f, []byte(testConfig), 0600))
	conf, err := config.ParseFile(f)
	require.NoError(t, err)
	return conf
}

func TestParseConfig(t *testing.T) {
	conf := parseTestConfig(t)

	c, err := ParseConfig(conf, "spindle")
	require.NoError(t, err)
	assert.Equal(t, &Config{Name: "spindle", Mode: QuadStep, Reversed: true, Cycles: 100}, c)
	assert.Equal(t, 400, c.PulsesPerRevolution())
	assert.Equal(t, 0.5, c.Revolutions(200))
	assert.Equal(t, -1.25, c.Revolutions(-500))

	c, err = ParseConfig(conf, "wheel")
	require.NoError(t, err)
	assert.Equal(t, &Config{Name: "wheel", Mode: HalfStep}, c)
	assert.Equal(t, 0, c.PulsesPerRevolution())
	assert.Equal(t, 0.0, c.Revolutions(10))

	c, err = ParseConfig(conf, "table")
	require.NoError(t, err)
	assert.Equal(t, FullStep, c.Mode)
	assert.Equal(t, 25, c.PulsesPerRevolution())
}

func TestParseConfigErrors(t *testing.T) {
	conf := parseTestConfig(t)
	for _, name := range []string{"missing", "nomode", "badmode", "badreverse", "badcycles"} {
		_, err := ParseConfig(conf, name)
		assert.Error(t, err, name)
	}
}

func TestConfigDecoders(t *testing.T) {
	c := &Config{Name: "test", Mode: QuadStep, Reversed: true}

	d := c.Decoder()
	assert.Equal(t, QuadStep, d.Mode())
	assert.True(t, d.Reversed())
	assert.Equal(t, "- - - -", feed(d, "01 00 10 11"))

	inc := IncrementalFromConfig[int32](c)
	feed(inc, "01 00 10 11")
	assert.Equal(t, int32(-4), inc.Counter())

	idx := IndexedFromConfig[int64](c)
	idx.Update(false, true, false)
	assert.Equal(t, int64(-1), idx.Position())
	assert.True(t, idx.Reversed())
}
