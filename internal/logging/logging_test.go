package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput("warn", &buf)
	require.Equal(t, logrus.WarnLevel, l.GetLevel())

	l.Info("hidden")
	l.WithField("component", "search").Warn("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "component=search")
}

func TestNewFallsBackToInfo(t *testing.T) {
	require.Equal(t, logrus.InfoLevel, New("nonsense").GetLevel())
	require.Equal(t, logrus.DebugLevel, New("debug").GetLevel())
}
