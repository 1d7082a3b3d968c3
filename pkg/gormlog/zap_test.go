package gormlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestShortCaller(t *testing.T) {
	require.Equal(t, "internal/app/store/account.go:38", shortCaller("/Users/alex/coursehub/internal/app/store/account.go:38"))
	require.Equal(t, "pkg/x/y.go:12", shortCaller(`C:\repo\project\pkg\x\y.go:12`))
	require.Equal(t, "a/b/c.go:1", shortCaller("/very/long/a/b/c.go:1"))
	require.Equal(t, "", shortCaller(""))
}

func TestTrace_SkipsRecordNotFound(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core).Sugar(), gormlogger.Warn)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)
	require.Zero(t, logs.Len())

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("syntax error"))
	require.Equal(t, 1, logs.Len())
	require.Equal(t, "gorm_trace", logs.All()[0].Message)
}

func TestLogMode_Silent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core).Sugar(), gormlogger.Info).LogMode(gormlogger.Silent)
	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("x"))
	require.Zero(t, logs.Len())
}
