package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

type Logger interface {
	Debugf(format string, args ...interface{})

	Infof(format string, args ...interface{})

	Warnf(format string, args ...interface{})

	Errorf(format string, args ...interface{})

	Fatalf(format string, args ...interface{})
}

var DefaultLogger Logger

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	DefaultLogger = New(zerolog.ConsoleWriter{Out: os.Stderr})
}

// New 返回写入w的Logger
func New(w io.Writer) Logger {
	return logWrapper{Logger: zerolog.New(w).With().Timestamp().Logger()}
}

// SetLevel 设置全局日志级别，例如 "debug"、"info"、"warn"
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

type logWrapper struct {
	Logger zerolog.Logger
}

func (logger logWrapper) Debugf(format string, args ...interface{}) {
	logger.Logger.Debug().Msgf(format, args...)
}

func (logger logWrapper) Infof(format string, args ...interface{}) {
	logger.Logger.Info().Msgf(format, args...)
}

func (logger logWrapper) Warnf(format string, args ...interface{}) {
	logger.Logger.Warn().Msgf(format, args...)
}

func (logger logWrapper) Errorf(format string, args ...interface{}) {
	logger.Logger.Error().Msgf(format, args...)
}

func (logger logWrapper) Fatalf(format string, args ...interface{}) {
	logger.Logger.Fatal().Msgf(format, args...)
}

func Debugf(format string, args ...interface{}) {
	DefaultLogger.Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	DefaultLogger.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	DefaultLogger.Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	DefaultLogger.Errorf(format, args...)
}

func Fatalf(format string, args ...interface{}) {
	DefaultLogger.Fatalf(format, args...)
}
