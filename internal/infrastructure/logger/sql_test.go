package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func stmt(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func newObservedSQLLogger(level string, opts ...func(*SQLLoggerConfig)) (*SQLLogger, *observer.ObservedLogs) {
	core, recorded := observer.New(zapcore.DebugLevel)
	cfg := SQLLoggerConfig{Level: level}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewSQLLogger(zap.New(core), cfg), recorded
}

func TestNewSQLLogger(t *testing.T) {
	l := NewSQLLogger(zap.NewNop(), SQLLoggerConfig{
		Level:         "debug",
		SlowThreshold: 500 * time.Millisecond,
		LogNotFound:   true,
	})

	assert.Equal(t, gormlogger.Info, l.level)
	assert.Equal(t, 500*time.Millisecond, l.slowThreshold)
	assert.True(t, l.logNotFound)
}

func TestSQLLogger_LogMode(t *testing.T) {
	l := NewSQLLogger(zap.NewNop(), SQLLoggerConfig{Level: "info"})

	switched, ok := l.LogMode(gormlogger.Warn).(*SQLLogger)
	require.True(t, ok)
	assert.Equal(t, gormlogger.Warn, switched.level)
	assert.Equal(t, gormlogger.Info, l.level)
}

func TestSQLLogger_Trace(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDKey, "req-7")

	t.Run("statement at debug with request id", func(t *testing.T) {
		l, recorded := newObservedSQLLogger("debug")

		l.Trace(ctx, time.Now(), stmt("SELECT * FROM scientists", 2), nil)

		logs := recorded.FilterMessage("SQL statement").All()
		require.Len(t, logs, 1)
		assert.Equal(t, zapcore.DebugLevel, logs[0].Level)
		assert.Equal(t, "req-7", logs[0].ContextMap()["request_id"])
		assert.Equal(t, "SELECT * FROM scientists", logs[0].ContextMap()["sql"])
		assert.Equal(t, int64(2), logs[0].ContextMap()["rows"])
	})

	t.Run("failed statement", func(t *testing.T) {
		l, recorded := newObservedSQLLogger("error")

		l.Trace(ctx, time.Now(), stmt("INSERT INTO missions", 0), errors.New("constraint failed"))

		logs := recorded.FilterMessage("SQL statement failed").All()
		require.Len(t, logs, 1)
		assert.Equal(t, "constraint failed", logs[0].ContextMap()["error"])
	})

	t.Run("record not found is skipped by default", func(t *testing.T) {
		l, recorded := newObservedSQLLogger("error")

		l.Trace(ctx, time.Now(), stmt("SELECT", 0), gormlogger.ErrRecordNotFound)

		assert.Equal(t, 0, recorded.Len())
	})

	t.Run("record not found is reported when asked", func(t *testing.T) {
		l, recorded := newObservedSQLLogger("error", func(c *SQLLoggerConfig) { c.LogNotFound = true })

		l.Trace(ctx, time.Now(), stmt("SELECT", 0), gormlogger.ErrRecordNotFound)

		assert.Equal(t, 1, recorded.FilterMessage("SQL statement failed").Len())
	})

	t.Run("slow statement warns", func(t *testing.T) {
		l, recorded := newObservedSQLLogger("warn", func(c *SQLLoggerConfig) { c.SlowThreshold = time.Millisecond })

		l.Trace(ctx, time.Now().Add(-time.Second), stmt("SELECT", 1), nil)

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Equal(t, zapcore.WarnLevel, logs[0].Level)
		assert.Equal(t, "Slow SQL statement", logs[0].Message)
		assert.Equal(t, time.Millisecond, logs[0].ContextMap()["threshold"])
	})

	t.Run("warn level hides fast statements", func(t *testing.T) {
		l, recorded := newObservedSQLLogger("warn", func(c *SQLLoggerConfig) { c.SlowThreshold = time.Hour })

		l.Trace(ctx, time.Now(), stmt("SELECT", 1), nil)

		assert.Equal(t, 0, recorded.Len())
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		l, recorded := newObservedSQLLogger("silent")

		l.Trace(ctx, time.Now(), stmt("SELECT", 1), errors.New("x"))

		assert.Equal(t, 0, recorded.Len())
	})

	t.Run("sql is not rendered when the entry is dropped", func(t *testing.T) {
		l := NewSQLLogger(zap.New(zapcore.NewNopCore()), SQLLoggerConfig{Level: "info"})
		called := false

		l.Trace(ctx, time.Now(), func() (string, int64) {
			called = true
			return "SELECT", 0
		}, nil)

		assert.False(t, called)
	})
}

func TestSQLLogger_Printf(t *testing.T) {
	l, recorded := newObservedSQLLogger("warn")

	l.Info(context.Background(), "opened %s", "cosmic.db")
	l.Warn(context.Background(), "retrying %d", 2)

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Equal(t, "retrying 2", logs[0].Message)
	assert.Equal(t, zapcore.WarnLevel, logs[0].Level)
}

func TestParseSQLLevel(t *testing.T) {
	tests := []struct {
		in   string
		want gormlogger.LogLevel
	}{
		{"silent", gormlogger.Silent},
		{"error", gormlogger.Error},
		{"warn", gormlogger.Warn},
		{"WARNING", gormlogger.Warn},
		{"info", gormlogger.Info},
		{" DEBUG ", gormlogger.Info},
		{"bogus", gormlogger.Warn},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSQLLevel(tt.in))
		})
	}
}
