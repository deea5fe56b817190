// Package logger — единый вывод логов timentp с учётом quiet (zap, опционально файл с ротацией).
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Quiet при true отключает информационные сообщения (Info); Warn и Error выводятся всегда.
var Quiet bool

var (
	mu    sync.RWMutex
	sugar = newDefault().Sugar()
)

// Options — настройки вывода
type Options struct {
	// Level — debug, info, warn, error; пусто — info
	Level string
	// File — дополнительно писать в файл (ротация lumberjack); пусто — только stderr
	File string
}

// Init настраивает логгер по опциям.
func Init(opts Options) error {
	lvl := zapcore.InfoLevel
	if opts.Level != "" {
		if err := lvl.UnmarshalText([]byte(opts.Level)); err != nil {
			return err
		}
	}
	core := consoleCore(lvl)
	if opts.File != "" {
		w := zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // МБ
			MaxBackups: 3,
			MaxAge:     30,
		})
		enc := zap.NewProductionEncoderConfig()
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
		core = zapcore.NewTee(core, zapcore.NewCore(zapcore.NewJSONEncoder(enc), w, lvl))
	}
	Replace(zap.New(core).Named("timentp"))
	return nil
}

// Replace подменяет логгер (встраивание в чужое приложение, тесты).
func Replace(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	sugar = l.Sugar()
}

// Sync сбрасывает буферы
func Sync() {
	_ = get().Sync()
}

// Debug — отладочное сообщение, подавляется Quiet
func Debug(format string, args ...interface{}) {
	if Quiet {
		return
	}
	get().Debugf(format, args...)
}

// Info выводит сообщение, если Quiet == false.
func Info(format string, args ...interface{}) {
	if Quiet {
		return
	}
	get().Infof(format, args...)
}

// Warn выводится всегда
func Warn(format string, args ...interface{}) {
	get().Warnf(format, args...)
}

// Error выводит сообщение об ошибке всегда.
func Error(format string, args ...interface{}) {
	get().Errorf(format, args...)
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

// newDefault — логгер до вызова Init: консоль, уровень info
func newDefault() *zap.Logger {
	return zap.New(consoleCore(zapcore.InfoLevel)).Named("timentp")
}

func consoleCore(lvl zapcore.Level) zapcore.Core {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	enc.CallerKey = ""
	return zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(os.Stderr), lvl)
}
