package logger

import "go.uber.org/zap"

// NOOPLogger discards everything. It is the default until a real logger
// is injected.
var NOOPLogger = zap.NewNop().Sugar()

// New builds a production JSON logger, or a human-friendly development
// logger when appEnv is "local".
func New(appEnv string) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if appEnv == "local" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
