// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwik-go/kwik/configuration"
	"github.com/kwik-go/kwik/fault"
)

type searchSettings struct {
	PopulationSize   int     `gluamapper:"population_size"`
	ConvergenceLimit int     `gluamapper:"convergence_limit"`
	Mutation         float64 `gluamapper:"mutation"`
	Target           string  `gluamapper:"target"`
	Workers          int     `gluamapper:"workers"`
}

const sampleConfiguration = `
local M = {}

M.population_size = 250
M.convergence_limit = 40 * 25
M.mutation = 0.05
M.target = "hello"
M.workers = 4

return M
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	fileName := filepath.Join(t.TempDir(), "search.conf")
	err := os.WriteFile(fileName, []byte(content), 0o600)
	require.NoError(t, err)
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	fileName := writeConfig(t, sampleConfiguration)

	settings := searchSettings{}
	err := configuration.ParseConfigurationFile(fileName, &settings)
	require.NoError(t, err)

	assert.Equal(t, 250, settings.PopulationSize, "population size")
	assert.Equal(t, 1000, settings.ConvergenceLimit, "convergence limit")
	assert.Equal(t, 0.05, settings.Mutation, "mutation")
	assert.Equal(t, "hello", settings.Target, "target")
	assert.Equal(t, 4, settings.Workers, "workers")
}

func TestParseConfigurationFileArgTable(t *testing.T) {
	fileName := writeConfig(t, `
local M = {}
M.target = arg[0]
return M
`)

	settings := searchSettings{}
	err := configuration.ParseConfigurationFile(fileName, &settings)
	require.NoError(t, err)
	assert.Equal(t, fileName, settings.Target, "arg[0]")
}

func TestParseConfigurationFileMissing(t *testing.T) {
	settings := searchSettings{}
	err := configuration.ParseConfigurationFile("/nonexistent/search.conf", &settings)
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "missing file")
}

func TestParseConfigurationFileBadLua(t *testing.T) {
	fileName := writeConfig(t, `this is not lua`)

	settings := searchSettings{}
	err := configuration.ParseConfigurationFile(fileName, &settings)
	assert.Error(t, err, "syntax error")
}

func TestParseConfigurationFileNotPointer(t *testing.T) {
	fileName := writeConfig(t, sampleConfiguration)

	settings := searchSettings{}
	err := configuration.ParseConfigurationFile(fileName, settings)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	var p *searchSettings
	err = configuration.ParseConfigurationFile(fileName, p)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "nil pointer")

	n := 0
	err = configuration.ParseConfigurationFile(fileName, &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a struct")
}
