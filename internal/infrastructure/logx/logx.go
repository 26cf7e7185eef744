package logx

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"hargakripto/internal/config"
)

var (
	logger *zap.Logger
)

func init() {
	appCfg := config.Load()
	var err error
	logger, err = New(appCfg.Env, appCfg.LogLevel)
	if err != nil {
		panic(err)
	}
}

// New builds a JSON logger for deployed environments and a console logger
// for ENV=local.
func New(env, level string) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if env == "local" {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapCfg.Sampling = nil
	zapCfg.DisableStacktrace = true
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if level != "" {
		_ = zapCfg.Level.UnmarshalText([]byte(strings.ToLower(level)))
	}
	return zapCfg.Build(zap.AddCaller())
}

// L returns the package-level logger instance.
func L() *zap.Logger {
	return logger
}
