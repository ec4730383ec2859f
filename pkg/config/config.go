// Package config provides the environment configuration of each function.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
)

// Content configures the content fetcher.
type Content struct {
	// Bucket is the S3 bucket the content is served from.
	Bucket string `env:"S3_BUCKET,required"`
}

// LogLevel is the logging of the counter updater.
type LogLevel string

const (
	// LogOff logs nothing on success.
	LogOff LogLevel = "off"
	// LogWarn logs the new value at warn level on success.
	LogWarn LogLevel = "warn"
)

// Counter configures the counter updater.
type Counter struct {
	// ParameterName is the SSM parameter holding the counter.
	ParameterName string `env:"PARAMETER_NAME,required"`
	// Secure stores the counter as a SecureString and reads it decrypted.
	Secure bool `env:"PARAMETER_SECURE" envDefault:"true"`
	// LogLevel is one of `off`, `warn`.
	LogLevel LogLevel `env:"PARAMETER_LOG_LEVEL" envDefault:"warn"`
}

// Echo configures the echo responder.
type Echo struct {
	Message string `env:"ECHO_MESSAGE" envDefault:"Hello from Lambda!"`
}

// ParseContent reads the content fetcher config from the process environment.
func ParseContent() (Content, error) {
	return parse[Content](nil)
}

// ParseCounter reads the counter updater config from the process environment.
func ParseCounter() (Counter, error) {
	conf, err := parse[Counter](nil)
	if err != nil {
		return conf, err
	}
	err = conf.validate()
	return conf, err
}

// ParseEcho reads the echo responder config from the process environment.
func ParseEcho() (Echo, error) {
	return parse[Echo](nil)
}

func (c *Counter) validate() error {
	level, err := ParseLogLevel(string(c.LogLevel))
	if err != nil {
		return fmt.Errorf("config: PARAMETER_LOG_LEVEL %w", err)
	}
	c.LogLevel = level
	return nil
}

// ParseLogLevel parses a counter log level, case insensitive.
func ParseLogLevel(s string) (LogLevel, error) {
	level := LogLevel(strings.ToLower(strings.TrimSpace(s)))
	switch level {
	case LogOff, LogWarn:
		return level, nil
	default:
		return "", fmt.Errorf("must be one of off|warn, got %q", s)
	}
}

// parse fills a T from environ, or from the process environment if environ is nil.
func parse[T any](environ map[string]string) (T, error) {
	var conf T
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.Parse(&conf, opts); err != nil {
		return conf, fmt.Errorf("config: %w", err)
	}
	return conf, nil
}
