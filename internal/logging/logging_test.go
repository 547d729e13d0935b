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

package logging_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/git-tutor/tutor/internal/config"
	"github.com/git-tutor/tutor/internal/logging"
)

func TestNewBuildsLoggerForEveryLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := config.Default()
		cfg.LogLevel = level

		log, err := logging.New(cfg)
		require.NoError(t, err)
		require.NotNil(t, log)

		log.Info("test message", "level", level)
		_ = log.Sync() // stdout sync on a pipe is expected to fail in test runners
	}
}

func TestNewSupportsJSONFormat(t *testing.T) {
	cfg := config.Default()
	cfg.LogFormat = "json"

	log, err := logging.New(cfg)
	require.NoError(t, err)
	log.Debug("structured", "key", "value")
}
