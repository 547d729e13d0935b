/*
Copyright (c) 2025 Git Tutor Contributors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/git-tutor/tutor/internal/config"
)

func TestDefaultHasSanePersistenceSettings(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "file", cfg.Backend)
	assert.NotEmpty(t, cfg.PersistPath)
	assert.NotEmpty(t, cfg.DatabaseDSN)
}

func TestLoadAppliesEnvironmentOverrides(t *testing.T) {
	t.Setenv("GIT_TUTOR_PORT", "9999")
	t.Setenv("GIT_TUTOR_BACKEND", "sqlite")
	t.Setenv("GIT_TUTOR_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadIgnoresMalformedPortOverride(t *testing.T) {
	t.Setenv("GIT_TUTOR_PORT", "not-a-number")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, config.Default().Port, cfg.Port)
}
