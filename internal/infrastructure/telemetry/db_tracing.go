package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds configuration for database tracing.
type DBTracingConfig struct {
	Enabled         bool
	LogFullSQL      bool          // record bound query variables in db.statement
	SlowQueryThresh time.Duration // queries slower than this get db.slow_query=true
	TracerProvider  trace.TracerProvider
}

// DBTracingPlugin installs otelgorm and annotates its spans with slow query
// information.
type DBTracingPlugin struct {
	config DBTracingConfig
	logger *zap.Logger
}

// NewDBTracingPlugin creates a new database tracing plugin with the given configuration.
func NewDBTracingPlugin(cfg DBTracingConfig, logger *zap.Logger) *DBTracingPlugin {
	if cfg.SlowQueryThresh <= 0 {
		cfg.SlowQueryThresh = 200 * time.Millisecond
	}
	return &DBTracingPlugin{
		config: cfg,
		logger: logger,
	}
}

type callbackRegistrar interface {
	Register(name string, fn func(*gorm.DB)) error
}

// Register installs the plugin on db. It is a no-op when tracing is disabled.
func (p *DBTracingPlugin) Register(db *gorm.DB) error {
	if !p.config.Enabled {
		p.logger.Debug("Database tracing disabled, skipping otelgorm registration")
		return nil
	}

	opts := []otelgorm.Option{otelgorm.WithoutMetrics()}
	if !p.config.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if p.config.TracerProvider != nil {
		opts = append(opts, otelgorm.WithTracerProvider(p.config.TracerProvider))
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return fmt.Errorf("register otelgorm: %w", err)
	}

	// The annotation runs while the otelgorm span is still open
	cb := db.Callback()
	hooks := []struct {
		name     string
		register callbackRegistrar
		fn       func(*gorm.DB)
	}{
		{"create:start", cb.Create().Before("gorm:create"), markStart},
		{"create:annotate", cb.Create().After("gorm:create").Before("otel:after:create"), p.annotate},
		{"query:start", cb.Query().Before("gorm:query"), markStart},
		{"query:annotate", cb.Query().After("gorm:query").Before("otel:after:select"), p.annotate},
		{"update:start", cb.Update().Before("gorm:update"), markStart},
		{"update:annotate", cb.Update().After("gorm:update").Before("otel:after:update"), p.annotate},
		{"delete:start", cb.Delete().Before("gorm:delete"), markStart},
		{"delete:annotate", cb.Delete().After("gorm:delete").Before("otel:after:delete"), p.annotate},
		{"row:start", cb.Row().Before("gorm:row"), markStart},
		{"row:annotate", cb.Row().After("gorm:row").Before("otel:after:row"), p.annotate},
		{"raw:start", cb.Raw().Before("gorm:raw"), markStart},
		{"raw:annotate", cb.Raw().After("gorm:raw").Before("otel:after:raw"), p.annotate},
	}
	for _, h := range hooks {
		if err := h.register.Register("slow_query:"+h.name, h.fn); err != nil {
			return fmt.Errorf("register %s callback: %w", h.name, err)
		}
	}

	p.logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", p.config.LogFullSQL),
		zap.Duration("slow_query_threshold", p.config.SlowQueryThresh),
		zap.String("dialect", db.Dialector.Name()),
	)
	return nil
}

type queryStartKey struct{}

func markStart(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = context.WithValue(db.Statement.Context, queryStartKey{}, time.Now())
	}
}

// annotate flags the current span when the statement exceeded the threshold
func (p *DBTracingPlugin) annotate(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	start, ok := ctx.Value(queryStartKey{}).(time.Time)
	if !ok {
		return
	}
	elapsed := time.Since(start)
	if elapsed <= p.config.SlowQueryThresh {
		return
	}

	span.SetAttributes(
		attribute.Bool("db.slow_query", true),
		attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
	)
	span.AddEvent("slow_query_warning", trace.WithAttributes(
		attribute.Int64("duration_ms", elapsed.Milliseconds()),
		attribute.Int64("threshold_ms", p.config.SlowQueryThresh.Milliseconds()),
	))
}
