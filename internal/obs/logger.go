// Package obs carries the engine's structured logging. Every approach and
// fetcher logs through this package rather than fmt, so log lines stay
// single-line and machine-parseable.
package obs

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines the interface the engine logs through.
type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	With(fields ...Field) Logger
	Sync() error
}

// Field is a structured logging field.
type Field struct {
	Key   string
	Value interface{}
}

func String(key, value string) Field      { return Field{Key: key, Value: value} }
func Int(key string, value int) Field     { return Field{Key: key, Value: value} }
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field   { return Field{Key: key, Value: value} }
func Duration(key string, ms int64) Field { return Field{Key: key, Value: ms} }
func Err(err error) Field                 { return Field{Key: "error", Value: err} }
func Any(key string, value interface{}) Field { return Field{Key: key, Value: value} }

// ZapLogger implements Logger using Uber's zap.
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger creates a production-configured zap logger.
func NewZapLogger() (*ZapLogger, error) {
	return NewZapLoggerWithConfig(zap.NewProductionConfig())
}

// NewDevelopmentZapLogger creates a console-friendly zap logger.
func NewDevelopmentZapLogger() (*ZapLogger, error) {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return NewZapLoggerWithConfig(config)
}

// NewZapLoggerWithConfig builds a ZapLogger from an arbitrary zap.Config.
func NewZapLoggerWithConfig(config zap.Config) (*ZapLogger, error) {
	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{logger: logger}, nil
}

func (z *ZapLogger) fieldsToZap(fields []Field) []zap.Field {
	zapFields := make([]zap.Field, len(fields))
	for i, field := range fields {
		switch v := field.Value.(type) {
		case string:
			zapFields[i] = zap.String(field.Key, v)
		case int:
			zapFields[i] = zap.Int(field.Key, v)
		case int64:
			zapFields[i] = zap.Int64(field.Key, v)
		case bool:
			zapFields[i] = zap.Bool(field.Key, v)
		case error:
			zapFields[i] = zap.Error(v)
		default:
			zapFields[i] = zap.Any(field.Key, v)
		}
	}
	return zapFields
}

func (z *ZapLogger) Info(msg string, fields ...Field)  { z.logger.Info(msg, z.fieldsToZap(fields)...) }
func (z *ZapLogger) Warn(msg string, fields ...Field)  { z.logger.Warn(msg, z.fieldsToZap(fields)...) }
func (z *ZapLogger) Error(msg string, fields ...Field) { z.logger.Error(msg, z.fieldsToZap(fields)...) }
func (z *ZapLogger) Debug(msg string, fields ...Field) { z.logger.Debug(msg, z.fieldsToZap(fields)...) }

func (z *ZapLogger) With(fields ...Field) Logger {
	return &ZapLogger{logger: z.logger.With(z.fieldsToZap(fields)...)}
}

func (z *ZapLogger) Sync() error { return z.logger.Sync() }

var global Logger

// Init installs the global logger, falling back to a development config
// when zap's production config fails to build.
func Init(development bool) {
	var logger *ZapLogger
	var err error
	if development {
		logger, err = NewDevelopmentZapLogger()
	} else {
		logger, err = NewZapLogger()
	}
	if err != nil {
		logger, _ = NewDevelopmentZapLogger()
	}
	global = logger
}

// L returns the global logger, lazily initializing a development logger if
// Init was never called (e.g. in tests).
func L() Logger {
	if global == nil {
		Init(true)
	}
	return global
}

func Info(msg string, fields ...Field)  { L().Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { L().Warn(msg, fields...) }
func Error(msg string, fields ...Field) { L().Error(msg, fields...) }
func Debug(msg string, fields ...Field) { L().Debug(msg, fields...) }
