package logger

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Log      *zap.Logger
	onceInit sync.Once
)

// Options select the process logger's level and encoding. Production
// logs are JSON, everything else the colored console format.
type Options struct {
	Level   string
	Service string
	Env     string
}

func Init(opts Options, meta ...zap.Field) error {
	onceInit.Do(func() {
		instance := zap.Must(configure(ParseLevel(opts.Level), opts.Env == "production").Build())
		if opts.Service != "" {
			meta = append([]zap.Field{zap.String("service", opts.Service)}, meta...)
		}
		instance = instance.With(meta...)

		Log = zap.New(instance.Core(), zap.AddCaller())
	})

	if Log == nil {
		return errors.New("logger not initialized")
	}

	return nil
}

// ParseLevel maps a textual level to zapcore, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func configure(level zapcore.Level, structured bool) zap.Config {
	encoder := zap.NewProductionEncoderConfig()
	encoder.TimeKey = "timestamp"
	encoder.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder.EncodeCaller = zapcore.ShortCallerEncoder
	encoder.EncodeDuration = zapcore.SecondsDurationEncoder
	encoder.CallerKey = "caller"

	encoding := "console"
	encoder.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if structured {
		encoding = "json"
		encoder.EncodeLevel = zapcore.LowercaseLevelEncoder
	}

	return zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         encoding,
		EncoderConfig:    encoder,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
}
