package logger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

// SQLLogger routes GORM statements and driver messages through zap.
// Entries written while serving a request carry its request_id and trace ids.
type SQLLogger struct {
	base          *zap.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
	logNotFound   bool
}

// SQLLoggerConfig configures NewSQLLogger
type SQLLoggerConfig struct {
	// Level is an application log level name, see ParseSQLLevel
	Level         string
	SlowThreshold time.Duration
	// LogNotFound reports gorm.ErrRecordNotFound as a failed statement
	LogNotFound bool
}

// NewSQLLogger creates a GORM logger writing to base under the "sql" name
func NewSQLLogger(base *zap.Logger, cfg SQLLoggerConfig) *SQLLogger {
	return &SQLLogger{
		base:          base.Named("sql"),
		level:         ParseSQLLevel(cfg.Level),
		slowThreshold: cfg.SlowThreshold,
		logNotFound:   cfg.LogNotFound,
	}
}

// LogMode implements gormlogger.Interface
func (l *SQLLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

// Info implements gormlogger.Interface
func (l *SQLLogger) Info(ctx context.Context, msg string, data ...any) {
	l.printf(ctx, gormlogger.Info, zapcore.InfoLevel, msg, data)
}

// Warn implements gormlogger.Interface
func (l *SQLLogger) Warn(ctx context.Context, msg string, data ...any) {
	l.printf(ctx, gormlogger.Warn, zapcore.WarnLevel, msg, data)
}

// Error implements gormlogger.Interface
func (l *SQLLogger) Error(ctx context.Context, msg string, data ...any) {
	l.printf(ctx, gormlogger.Error, zapcore.ErrorLevel, msg, data)
}

func (l *SQLLogger) printf(ctx context.Context, need gormlogger.LogLevel, lvl zapcore.Level, msg string, data []any) {
	if l.level < need {
		return
	}
	if ce := l.forContext(ctx).Check(lvl, fmt.Sprintf(msg, data...)); ce != nil {
		ce.Write()
	}
}

// Trace implements gormlogger.Interface. Failed statements log at error,
// statements slower than the threshold at warn, everything else at debug.
func (l *SQLLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= gormlogger.Error:
		if !l.logNotFound && errors.Is(err, gormlogger.ErrRecordNotFound) {
			return
		}
		l.statement(ctx, zapcore.ErrorLevel, "SQL statement failed", elapsed, fc, zap.Error(err))
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		l.statement(ctx, zapcore.WarnLevel, "Slow SQL statement", elapsed, fc, zap.Duration("threshold", l.slowThreshold))
	case l.level >= gormlogger.Info:
		l.statement(ctx, zapcore.DebugLevel, "SQL statement", elapsed, fc)
	}
}

// statement renders the SQL only when the entry is going to be written.
func (l *SQLLogger) statement(ctx context.Context, lvl zapcore.Level, msg string, elapsed time.Duration, fc func() (string, int64), extra ...zap.Field) {
	ce := l.forContext(ctx).Check(lvl, msg)
	if ce == nil {
		return
	}
	sql, rows := fc()
	fields := append([]zap.Field{
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
		zap.String("sql", sql),
	}, extra...)
	ce.Write(fields...)
}

func (l *SQLLogger) forContext(ctx context.Context) *zap.Logger {
	fields := traceFields(ctx)
	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	if len(fields) == 0 {
		return l.base
	}
	return l.base.With(fields...)
}

// ParseSQLLevel maps an application log level name onto GORM's levels.
// Unknown names fall back to Warn.
func ParseSQLLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent", "off":
		return gormlogger.Silent
	case "error", "fatal":
		return gormlogger.Error
	case "warn", "warning":
		return gormlogger.Warn
	case "info", "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
