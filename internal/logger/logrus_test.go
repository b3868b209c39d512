package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/smartcontractkit/libocr/commontypes"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("chatty")
	require.Error(t, err)

	l, err := New("debug")
	require.NoError(t, err)
	require.Equal(t, logrus.DebugLevel, l.logger.GetLevel())
}

func TestFieldsAndLevels(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetLevel(logrus.InfoLevel)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	l := NewFromLogrus(base)

	l.Debug("hidden", nil)
	l.Info("found prime", commontypes.LogFields{"prime": "11"})
	l.Critical("broken", nil)

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, `msg="found prime"`)
	require.Contains(t, out, "prime=11")
	require.Contains(t, out, `level=error msg="CRITICAL: broken"`)
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Error("ignored", commontypes.LogFields{"k": "v"})
	require.Equal(t, logrus.PanicLevel, l.logger.GetLevel())
}
