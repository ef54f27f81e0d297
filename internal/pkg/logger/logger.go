package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger - интерфейс для логирования
type Logger interface {
	Debug(msg string, fields ...map[string]interface{})
	Info(msg string, fields ...map[string]interface{})
	Warn(msg string, fields ...map[string]interface{})
	Error(msg string, fields ...map[string]interface{})
	Fatal(msg string, fields ...map[string]interface{})
	With(key string, value interface{}) Logger
}

// zerologLogger - реализация Logger на основе zerolog
type zerologLogger struct {
	logger zerolog.Logger
}

// New создает новый logger с заданным уровнем, форматом и выводом
// output: "stdout", "stderr" или путь к файлу (дописывается в конец)
func New(level, format, output string) (Logger, error) {
	writer, err := openOutput(output)
	if err != nil {
		return nil, err
	}
	return NewWithWriter(level, format, writer), nil
}

// NewWithWriter создает logger поверх произвольного writer
func NewWithWriter(level, format string, writer io.Writer) Logger {
	if format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        writer,
			TimeFormat: time.RFC3339,
		}
	}

	logger := zerolog.New(writer).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Str("service", "drivesure").
		Logger()

	return &zerologLogger{logger: logger}
}

// openOutput открывает приемник логов
func openOutput(output string) (io.Writer, error) {
	switch output {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}

	file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", output, err)
	}
	return file, nil
}

func (l *zerologLogger) Debug(msg string, fields ...map[string]interface{}) {
	l.emit(l.logger.Debug(), msg, fields)
}

func (l *zerologLogger) Info(msg string, fields ...map[string]interface{}) {
	l.emit(l.logger.Info(), msg, fields)
}

func (l *zerologLogger) Warn(msg string, fields ...map[string]interface{}) {
	l.emit(l.logger.Warn(), msg, fields)
}

func (l *zerologLogger) Error(msg string, fields ...map[string]interface{}) {
	l.emit(l.logger.Error(), msg, fields)
}

func (l *zerologLogger) Fatal(msg string, fields ...map[string]interface{}) {
	l.emit(l.logger.Fatal(), msg, fields)
}

func (l *zerologLogger) With(key string, value interface{}) Logger {
	return &zerologLogger{logger: l.logger.With().Interface(key, value).Logger()}
}

// emit добавляет поля к событию и отправляет его
func (l *zerologLogger) emit(event *zerolog.Event, msg string, fields []map[string]interface{}) {
	for _, fieldMap := range fields {
		for key, value := range fieldMap {
			if err, ok := value.(error); ok {
				event.AnErr(key, err)
				continue
			}
			event.Interface(key, value)
		}
	}
	event.Msg(msg)
}

// parseLevel преобразует строковое значение уровня в zerolog.Level
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewDevelopment создает logger для разработки и тестов
func NewDevelopment() Logger {
	return NewWithWriter("debug", "console", os.Stdout)
}

// NewNoop создает logger, который отбрасывает все сообщения
func NewNoop() Logger {
	return &zerologLogger{logger: zerolog.Nop()}
}
