package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Campos comunes en todas las líneas de la API.
const (
	FieldApp         = "app"
	FieldComponent   = "component"
	FieldPrincipalID = "principal_id"
	FieldRole        = "role"
)

// Config opciones para el logger.
type Config struct {
	Env    string    // development -> consola legible; production -> JSON
	Level  string    // trace, debug, info, warn, error
	App    string    // se agrega como campo "app" si no está vacío
	Output io.Writer // por defecto os.Stdout
}

// Logger envuelve zerolog; los subloggers se derivan con Component y ForPrincipal.
type Logger struct {
	zl zerolog.Logger
}

// New crea un logger estructurado y lo deja como logger global de zerolog.
func New(cfg Config) *Logger {
	w := cfg.Output
	if w == nil {
		w = os.Stdout
	}
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "02/01/2006 15:04:05"}
	}

	ctx := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp()
	if cfg.App != "" {
		ctx = ctx.Str(FieldApp, cfg.App)
	}
	zl := ctx.Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

// Nop descarta todo (tests).
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Component sublogger para una capa (http, postgres, seed).
func (l *Logger) Component(name string) *Logger {
	return &Logger{zl: l.zl.With().Str(FieldComponent, name).Logger()}
}

// ForPrincipal sublogger con el llamador autenticado. Peticiones anónimas
// (login, registro, health) no llevan los campos.
func (l *Logger) ForPrincipal(id, role string) *Logger {
	if id == "" {
		return l
	}
	ctx := l.zl.With().Str(FieldPrincipalID, id)
	if role != "" {
		ctx = ctx.Str(FieldRole, role)
	}
	return &Logger{zl: ctx.Logger()}
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// ForStatus evento con el nivel que corresponde a un status HTTP:
// 5xx error, 4xx warn, resto info.
func (l *Logger) ForStatus(status int) *zerolog.Event {
	switch {
	case status >= 500:
		return l.zl.Error()
	case status >= 400:
		return l.zl.Warn()
	default:
		return l.zl.Info()
	}
}
