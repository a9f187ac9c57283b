package dataapi

import (
	"github.com/hashicorp/go-hclog"
)

// Logger is the logging interface consumed by the client. Field maps carry
// structured context; implementations decide rendering.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// hclogAdapter implements Logger on top of hashicorp/go-hclog.
type hclogAdapter struct {
	logger hclog.Logger
}

// NewHCLogAdapter wraps an hclog.Logger as a Logger.
func NewHCLogAdapter(logger hclog.Logger) Logger {
	return &hclogAdapter{logger: logger}
}

// NewDefaultLogger creates an hclog-backed Logger named "dataapi". Debug
// selects between Debug and Info levels.
func NewDefaultLogger(debug bool) Logger {
	level := hclog.Info
	if debug {
		level = hclog.Debug
	}

	return NewHCLogAdapter(hclog.New(&hclog.LoggerOptions{
		Name:  "dataapi",
		Level: level,
	}))
}

func flatten(fields map[string]interface{}) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for key, value := range fields {
		args = append(args, key, value)
	}

	return args
}

func (l *hclogAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, flatten(fields)...)
}

func (l *hclogAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, flatten(fields)...)
}

func (l *hclogAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, flatten(fields)...)
}

func (l *hclogAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, flatten(fields)...)
}
