// Package ylog provides the slog.Logger used by every function.
// The default logger is built from the environment, so a function
// configures its logging from the Lambda console without a redeploy.
//
//	ylog.Info("object served", "key", "index.html")
//	ylog.FromContext(ctx).Warn("new value", "value", 6)
package ylog

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/caarlos0/env/v6"
)

var defaultLogger = Default()

// SetDefault set global logger.
func SetDefault(logger *slog.Logger) { defaultLogger = logger }

// Logger returns the global logger.
func Logger() *slog.Logger { return defaultLogger }

// Debug logs a message at debug level.
func Debug(msg string, keyvals ...any) {
	defaultLogger.Debug(msg, keyvals...)
}

// Info logs a message at info level.
func Info(msg string, keyvals ...any) {
	defaultLogger.Info(msg, keyvals...)
}

// Warn logs a message at warn level.
func Warn(msg string, keyvals ...any) {
	defaultLogger.Warn(msg, keyvals...)
}

// Error logs a message at error level.
func Error(msg string, err error, keyvals ...any) {
	defaultLogger.Error(msg, append([]any{"err", err}, keyvals...)...)
}

// FromContext returns the global logger, tagged with the request id
// if ctx belongs to a lambda invocation.
func FromContext(ctx context.Context) *slog.Logger {
	return WithRequest(ctx, defaultLogger)
}

// WithRequest tags logger with the request id carried by ctx.
func WithRequest(ctx context.Context, logger *slog.Logger) *slog.Logger {
	lc, ok := lambdacontext.FromContext(ctx)
	if !ok || lc.AwsRequestID == "" {
		return logger
	}
	return logger.With("request_id", lc.AwsRequestID)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// Config is the config of slog, the config is from environment.
type Config struct {
	// Verbose indicates if logger log code line.
	Verbose bool `env:"LAMBDA_LOG_VERBOSE" envDefault:"false"`

	// the log level, It's one of `debug`, `info`, `warn`, `error`
	Level string `env:"LAMBDA_LOG_LEVEL" envDefault:"info"`

	// log output file path, It's stdout if not set.
	Output string `env:"LAMBDA_LOG_OUTPUT"`

	// error log output file path, It's stderr if not set.
	ErrorOutput string `env:"LAMBDA_LOG_ERROR_OUTPUT"`

	// text or json.
	Format string `env:"LAMBDA_LOG_FORMAT" envDefault:"text"`

	// DisableTime removes the time attribute, CloudWatch stamps every line anyway.
	DisableTime bool `env:"LAMBDA_LOG_DISABLE_TIME" envDefault:"false"`

	// NoColor disables ANSI colors of the text format.
	NoColor bool `env:"LAMBDA_LOG_NO_COLOR" envDefault:"false"`
}

// Default returns a slog.Logger according to enviroment.
func Default() *slog.Logger {
	var conf Config
	if err := env.Parse(&conf); err != nil {
		log.Fatalf("%+v\n", err)
	}
	return NewFromConfig(conf)
}

// NewFromConfig returns a slog.Logger according to conf.
func NewFromConfig(conf Config) *slog.Logger {
	return slog.New(NewHandlerFromConfig(conf))
}

// parseToWriter opens path for appending, it falls back to defaultWriter
// if path is empty or cannot be opened.
func parseToWriter(path string, defaultWriter io.Writer) io.Writer {
	if path == "" {
		return defaultWriter
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("ylog: open %s: %v, fall back to default output", path, err)
		return defaultWriter
	}
	return f
}

// ParseLevel parses a level name, unknown names are info.
func ParseLevel(stringLevel string) slog.Level {
	switch strings.ToLower(stringLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
