package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/smartcontractkit/libocr/commontypes"
)

var _ commontypes.Logger = &Logger{}

// Logger adapts a logrus.Logger to the commontypes.Logger interface accepted by package primes.
type Logger struct {
	logger *logrus.Logger
}

// New returns a Logger writing text-formatted entries to stderr at the given level ("trace", "debug", "info", ...).
func New(level string) (*Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(lvl)
	return &Logger{logger}, nil
}

// NewFromLogrus wraps an existing logrus.Logger.
func NewFromLogrus(logger *logrus.Logger) *Logger {
	return &Logger{logger}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return &Logger{logger}
}

func (l *Logger) Trace(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Trace(msg)
}

func (l *Logger) Debug(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (l *Logger) Info(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Info(msg)
}

func (l *Logger) Warn(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Warn(msg)
}

func (l *Logger) Error(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Error(msg)
}

func (l *Logger) Critical(msg string, fields commontypes.LogFields) {
	l.logger.WithFields(logrus.Fields(fields)).Error("CRITICAL: " + msg)
}
