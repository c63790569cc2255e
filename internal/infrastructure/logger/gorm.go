package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowThreshold = 200 * time.Millisecond

// GormLogger routes GORM statements through zap with request and trace correlation
type GormLogger struct {
	logger        *zap.Logger
	logLevel      gormlogger.LogLevel
	slowThreshold time.Duration
	logNotFound   bool
	maxSQLLength  int
	isContention  func(error) bool
}

// GormLoggerOption is a function that configures a GormLogger
type GormLoggerOption func(*GormLogger)

// WithSlowThreshold sets the duration above which a statement is logged as slow; 0 disables it
func WithSlowThreshold(threshold time.Duration) GormLoggerOption {
	return func(l *GormLogger) {
		l.slowThreshold = threshold
	}
}

// WithIgnoreRecordNotFoundError configures whether to ignore record not found errors
func WithIgnoreRecordNotFoundError(ignore bool) GormLoggerOption {
	return func(l *GormLogger) {
		l.logNotFound = !ignore
	}
}

// WithMaxSQLLength truncates logged statements longer than n bytes; 0 keeps them whole
func WithMaxSQLLength(n int) GormLoggerOption {
	return func(l *GormLogger) {
		l.maxSQLLength = n
	}
}

// WithContentionClassifier downgrades errors matched by fn to warnings.
// Ledger transactions retry on lock contention, so those failures are expected.
func WithContentionClassifier(fn func(error) bool) GormLoggerOption {
	return func(l *GormLogger) {
		l.isContention = fn
	}
}

// NewGormLogger creates a new GORM logger backed by zap
func NewGormLogger(zapLogger *zap.Logger, level gormlogger.LogLevel, opts ...GormLoggerOption) *GormLogger {
	gl := &GormLogger{
		logger:        zapLogger.Named("gorm"),
		logLevel:      level,
		slowThreshold: defaultSlowThreshold,
		isContention:  func(error) bool { return false },
	}
	for _, opt := range opts {
		opt(gl)
	}
	return gl
}

// LogMode implements gormlogger.Interface
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.logLevel = level
	return &clone
}

// Info implements gormlogger.Interface
func (l *GormLogger) Info(_ context.Context, msg string, data ...any) {
	if l.logLevel >= gormlogger.Info {
		l.logger.Info(fmt.Sprintf(msg, data...))
	}
}

// Warn implements gormlogger.Interface
func (l *GormLogger) Warn(_ context.Context, msg string, data ...any) {
	if l.logLevel >= gormlogger.Warn {
		l.logger.Warn(fmt.Sprintf(msg, data...))
	}
}

// Error implements gormlogger.Interface
func (l *GormLogger) Error(_ context.Context, msg string, data ...any) {
	if l.logLevel >= gormlogger.Error {
		l.logger.Error(fmt.Sprintf(msg, data...))
	}
}

// Trace implements gormlogger.Interface
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.logLevel <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	lvl, msg, ok := l.classify(elapsed, err)
	if !ok {
		return
	}

	sql, rows := fc()
	fields := append(l.contextFields(ctx),
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
		zap.String("sql", l.statement(sql)),
	)
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	if ce := l.logger.Check(lvl, msg); ce != nil {
		ce.Write(fields...)
	}
}

// classify picks the level and message for a statement, or ok=false to drop it
func (l *GormLogger) classify(elapsed time.Duration, err error) (zapcore.Level, string, bool) {
	switch {
	case err != nil && errors.Is(err, gormlogger.ErrRecordNotFound):
		return zapcore.DebugLevel, "SQL Record Not Found", l.logNotFound && l.logLevel >= gormlogger.Info
	case err != nil && l.isContention(err):
		return zapcore.WarnLevel, "SQL Contention", l.logLevel >= gormlogger.Warn
	case err != nil:
		return zapcore.ErrorLevel, "SQL Error", l.logLevel >= gormlogger.Error
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		return zapcore.WarnLevel, fmt.Sprintf("SLOW SQL >= %v", l.slowThreshold), l.logLevel >= gormlogger.Warn
	default:
		return zapcore.DebugLevel, "SQL Query", l.logLevel >= gormlogger.Info
	}
}

func (l *GormLogger) contextFields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0, 6)
	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	if userID := GetUserID(ctx); userID != "" {
		fields = append(fields, zap.String("user_id", userID))
	}
	if traceID := GetTraceID(ctx); traceID != "" {
		fields = append(fields, zap.String("trace_id", traceID))
	}
	return fields
}

func (l *GormLogger) statement(sql string) string {
	if l.maxSQLLength <= 0 || len(sql) <= l.maxSQLLength {
		return sql
	}
	return sql[:l.maxSQLLength] + "..."
}

// MapGormLogLevel maps string log level to GORM log level
func MapGormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "warn":
		return gormlogger.Warn
	case "info", "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
