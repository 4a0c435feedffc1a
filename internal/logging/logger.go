// Package logging builds the application's zap logger. The TUI owns the
// terminal, so records go to a rotating file under the data directory and
// never to stdout or stderr.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	FilePath string
	Debug    bool
}

// Logger pairs the zap logger with its rotating sink so the caller can flush
// and close the file on exit.
type Logger struct {
	*zap.Logger
	rotator *lumberjack.Logger
}

func New(opts Options) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0o700); err != nil {
		return nil, err
	}

	rotator := &lumberjack.Logger{
		Filename:   opts.FilePath,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zap.InfoLevel
	if opts.Debug {
		level = zap.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(rotator),
		level,
	)

	return &Logger{
		Logger:  zap.New(core, zap.AddCaller()),
		rotator: rotator,
	}, nil
}

// Close flushes buffered records and closes the log file.
func (l *Logger) Close() error {
	_ = l.Logger.Sync()
	return l.rotator.Close()
}
