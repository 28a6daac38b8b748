package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	InitLogger("debug")
	require.Equal(t, logrus.DebugLevel, Log.GetLevel())

	InitLogger("warn")
	require.Equal(t, logrus.WarnLevel, Log.GetLevel())

	// 非法级别回退到info
	InitLogger("chatty")
	require.Equal(t, logrus.InfoLevel, Log.GetLevel())
}
