package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContent(t *testing.T) {
	t.Setenv("S3_BUCKET", "static-site")

	conf, err := ParseContent()
	require.NoError(t, err)
	assert.Equal(t, "static-site", conf.Bucket)
}

func TestParseContentMissingBucket(t *testing.T) {
	_, err := parse[Content](map[string]string{})
	assert.ErrorContains(t, err, "S3_BUCKET")
}

func TestParseCounter(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PARAMETER_NAME", "/app/counter")

		conf, err := ParseCounter()
		require.NoError(t, err)
		assert.Equal(t, "/app/counter", conf.ParameterName)
		assert.True(t, conf.Secure)
		assert.Equal(t, LogWarn, conf.LogLevel)
	})

	t.Run("plain and silent", func(t *testing.T) {
		t.Setenv("PARAMETER_NAME", "counter")
		t.Setenv("PARAMETER_SECURE", "false")
		t.Setenv("PARAMETER_LOG_LEVEL", "OFF")

		conf, err := ParseCounter()
		require.NoError(t, err)
		assert.False(t, conf.Secure)
		assert.Equal(t, LogOff, conf.LogLevel)
	})

	t.Run("unknown log level", func(t *testing.T) {
		t.Setenv("PARAMETER_NAME", "counter")
		t.Setenv("PARAMETER_LOG_LEVEL", "debug")

		_, err := ParseCounter()
		assert.ErrorContains(t, err, "PARAMETER_LOG_LEVEL")
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := parse[Counter](map[string]string{"PARAMETER_SECURE": "true"})
		assert.ErrorContains(t, err, "PARAMETER_NAME")
	})
}

func TestParseLogLevel(t *testing.T) {
	for in, want := range map[string]LogLevel{"off": LogOff, "OFF": LogOff, "Warn": LogWarn, " warn ": LogWarn} {
		got, err := ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseLogLevel("debug")
	assert.ErrorContains(t, err, "off|warn")
}

func TestParseEcho(t *testing.T) {
	conf, err := parse[Echo](map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, "Hello from Lambda!", conf.Message)

	t.Setenv("ECHO_MESSAGE", "hi")
	conf, err = ParseEcho()
	require.NoError(t, err)
	assert.Equal(t, "hi", conf.Message)
}
