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

// Package logging wraps zap the way the discobot proxy's internal
// logger package does: a small Logger struct exposing leveled
// methods, configurable console vs JSON encoding. Used by the HTTP/WS
// server and the serve command; never by the git package itself,
// which stays side-effect free.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/git-tutor/tutor/internal/config"
)

// Logger wraps zap.Logger with the handful of leveled methods this
// module's call sites need.
type Logger struct {
	zap   *zap.Logger
	sugar *zap.SugaredLogger
}

// New builds a Logger from the resolved config's log level and format.
func New(cfg config.Config) (*Logger, error) {
	var level zapcore.Level
	switch cfg.LogLevel {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.LogFormat == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		if !cfg.NoColor {
			encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)
	zapLogger := zap.New(core)

	return &Logger{zap: zapLogger, sugar: zapLogger.Sugar()}, nil
}

// Debug logs a debug-level message with structured key/value pairs.
func (l *Logger) Debug(msg string, kv ...interface{}) { l.sugar.Debugw(msg, kv...) }

// Info logs an info-level message with structured key/value pairs.
func (l *Logger) Info(msg string, kv ...interface{}) { l.sugar.Infow(msg, kv...) }

// Warn logs a warn-level message with structured key/value pairs.
func (l *Logger) Warn(msg string, kv ...interface{}) { l.sugar.Warnw(msg, kv...) }

// Error logs an error-level message with structured key/value pairs.
func (l *Logger) Error(msg string, kv ...interface{}) { l.sugar.Errorw(msg, kv...) }

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error { return l.zap.Sync() }
