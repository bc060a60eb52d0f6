package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/dmitrymomot/formkit/pkg/environment"
)

// Format selects the slog handler.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

type config struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// Option configures New.
type Option func(*config)

// New builds a logger. Without options it writes JSON at info level to
// stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{level: slog.LevelInfo, format: FormatJSON, output: os.Stdout}
	for _, opt := range opts {
		opt(cfg)
	}

	ho := &slog.HandlerOptions{Level: cfg.level}
	var h slog.Handler = slog.NewJSONHandler(cfg.output, ho)
	if cfg.format == FormatText {
		h = slog.NewTextHandler(cfg.output, ho)
	}
	if len(cfg.attrs) > 0 {
		h = h.WithAttrs(cfg.attrs)
	}
	return slog.New(newContextHandler(h, cfg.extractors))
}

// SetAsDefault installs l as the slog default, which also redirects the
// standard log package.
func SetAsDefault(l *slog.Logger) { slog.SetDefault(l) }

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat panics on anything but FormatJSON or FormatText.
func WithFormat(f Format) Option {
	if f != FormatJSON && f != FormatText {
		panic(fmt.Sprintf("logger: unknown format %q", f))
	}
	return func(c *config) { c.format = f }
}

func WithTextFormatter() Option { return WithFormat(FormatText) }

func WithJSONFormatter() Option { return WithFormat(FormatJSON) }

// WithOutput redirects output. A nil writer is ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// FileConfig controls rotation of file output.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// WithFile sends records to a size-rotated file. With tee the current output
// keeps receiving them too. An empty path is ignored.
func WithFile(fc FileConfig, tee bool) Option {
	return func(c *config) {
		if fc.Path == "" {
			return
		}
		var w io.Writer = &lumberjack.Logger{
			Filename:   fc.Path,
			MaxSize:    fc.MaxSizeMB,
			MaxBackups: fc.MaxBackups,
			MaxAge:     fc.MaxAgeDays,
			Compress:   fc.Compress,
		}
		if tee && c.output != nil {
			w = io.MultiWriter(c.output, w)
		}
		c.output = w
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) { c.attrs = append(c.attrs, attrs...) }
}

// WithContextExtractors adds per-record attributes read from the context
// passed to the *Context logging methods. Nil extractors are skipped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithContextValue logs ctx.Value(key) under name whenever it is set.
func WithContextValue(name string, key any) Option {
	if name == "" || key == nil {
		return func(*config) {}
	}
	return WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
		v := ctx.Value(key)
		return slog.Any(name, v), v != nil
	})
}

// WithEnvironment applies the preset for env (parsed with environment.Parse)
// and tags records with service and env. Development logs text at debug
// level; staging and production log JSON at info. An empty service leaves
// the logger untouched.
func WithEnvironment(env, service string) Option {
	return func(c *config) {
		if service == "" {
			return
		}
		e := environment.Parse(env)
		c.level, c.format = slog.LevelInfo, FormatJSON
		if e == environment.Development {
			c.level, c.format = slog.LevelDebug, FormatText
		}
		c.attrs = append(c.attrs, slog.String("service", service), slog.String("env", string(e)))
	}
}

func WithDevelopment(service string) Option {
	return WithEnvironment(string(environment.Development), service)
}

func WithProduction(service string) Option {
	return WithEnvironment(string(environment.Production), service)
}
