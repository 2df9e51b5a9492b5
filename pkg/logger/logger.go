package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger é a interface para logging
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// Options define o nível e o formato do log
type Options struct {
	Level  string // debug, info, warn ou error
	Format string // json ou console
	Output io.Writer
}

// ZerologLogger implementa Logger sobre o zerolog
type ZerologLogger struct {
	log zerolog.Logger
}

// NewLogger cria uma nova instância de Logger
func NewLogger(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	if opts.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}

	return &ZerologLogger{
		log: zerolog.New(out).Level(level).With().Timestamp().Logger(),
	}
}

// Info registra uma mensagem de informação
func (l *ZerologLogger) Info(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Info(), keysAndValues).Msg(msg)
}

// Error registra uma mensagem de erro
func (l *ZerologLogger) Error(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Error(), keysAndValues).Msg(msg)
}

// Debug registra uma mensagem de debug
func (l *ZerologLogger) Debug(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Debug(), keysAndValues).Msg(msg)
}

// Warn registra uma mensagem de aviso
func (l *ZerologLogger) Warn(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Warn(), keysAndValues).Msg(msg)
}

// withFields adiciona os pares chave/valor ao evento. Uma chave sem valor
// é registrada em "extra".
func withFields(e *zerolog.Event, keysAndValues []interface{}) *zerolog.Event {
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 >= len(keysAndValues) {
			e = e.Interface("extra", keysAndValues[i])
			break
		}

		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}

		if err, isErr := keysAndValues[i+1].(error); isErr {
			e = e.AnErr(key, err)
			continue
		}
		e = e.Interface(key, keysAndValues[i+1])
	}
	return e
}
