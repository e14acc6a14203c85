// Package logger is the structured logging facade used by the engines and the
// editing session. The only production implementation is backed by zerolog.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger provides structured logging with a component name and fields.
type Logger interface {
	Info(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Debug(component, message string, fields map[string]interface{})
}

// ZerologAdapter implements Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerolog writes JSON lines at or above level to writer.
func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	l := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &ZerologAdapter{logger: l}
}

// NewConsoleLogger writes human-readable lines to stdout.
func NewConsoleLogger(level zerolog.Level) *ZerologAdapter {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
	}
	return NewZerolog(consoleWriter, level)
}

// Nop returns a Logger that discards everything.
func Nop() *ZerologAdapter {
	return &ZerologAdapter{logger: zerolog.Nop()}
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	z.emit(z.logger.Info(), component, message, fields)
}

func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	z.emit(z.logger.Error().Err(err), component, "operation failed", fields)
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	z.emit(z.logger.Warn(), component, message, fields)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	z.emit(z.logger.Debug(), component, message, fields)
}

// emit is a no-op for disabled levels; zerolog returns a nil event then.
func (z *ZerologAdapter) emit(event *zerolog.Event, component, message string, fields map[string]interface{}) {
	if !event.Enabled() {
		return
	}
	event = event.Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}
