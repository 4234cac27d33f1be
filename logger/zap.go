package logger

import (
	"go.uber.org/zap"
)

// zapLogger adapts a zap.SugaredLogger to the Logger interface,
// so applications that already log through zap can route the
// client's internal logging into their existing pipeline.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

var _ Logger = &zapLogger{}

// NewZap wraps an existing *zap.SugaredLogger.
//
// Usage:
//
//	z, _ := zap.NewProduction()
//	client, err := crpt_go.NewClient(10, crpt_go.WithLogger(logger.NewZap(z.Sugar())))
func NewZap(sugar *zap.SugaredLogger) Logger {
	return &zapLogger{sugar: sugar}
}

func (z *zapLogger) Debugf(format string, args ...any) {
	z.sugar.Debugf(format, args...)
}

func (z *zapLogger) Infof(format string, args ...any) {
	z.sugar.Infof(format, args...)
}

func (z *zapLogger) Warnf(format string, args ...any) {
	z.sugar.Warnf(format, args...)
}

func (z *zapLogger) Errorf(format string, args ...any) {
	z.sugar.Errorf(format, args...)
}
