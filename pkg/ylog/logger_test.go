package ylog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	testdir := t.TempDir()

	var (
		output    = path.Join(testdir, "output.log")
		errOutput = path.Join(testdir, "err_output.log")
	)

	conf := Config{
		Level:       "info",
		Output:      output,
		ErrorOutput: errOutput,
		Format:      "json",
		DisableTime: true,
	}

	logger := slog.New(NewHandlerFromConfig(conf))

	logger.Debug("some debug", "hello", "lambda")
	logger.Info("some info", "hello", "lambda")

	logger.Error("read error", "err", io.EOF, "hello", "lambda")

	log, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.FileExists(t, output)

	data := make(map[string]string)
	err = json.Unmarshal(log, &data)
	assert.NoError(t, err)
	assert.Equal(t, "some info", data["msg"])
	assert.Equal(t, "lambda", data["hello"])
	assert.NotContains(t, data, "time")

	errlog, err := os.ReadFile(errOutput)
	assert.NoError(t, err)
	assert.FileExists(t, errOutput)

	data = make(map[string]string)
	err = json.Unmarshal(errlog, &data)
	assert.NoError(t, err)
	assert.Equal(t, "read error", data["msg"])
	assert.Equal(t, "EOF", data["err"])
	assert.Equal(t, "lambda", data["hello"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestWithRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-1"})
	WithRequest(ctx, logger).Info("tagged")
	WithRequest(context.Background(), logger).Info("untagged")

	dec := json.NewDecoder(&buf)

	var tagged map[string]any
	require.NoError(t, dec.Decode(&tagged))
	assert.Equal(t, "req-1", tagged["request_id"])

	var untagged map[string]any
	require.NoError(t, dec.Decode(&untagged))
	assert.NotContains(t, untagged, "request_id")
}

func TestTextFormat(t *testing.T) {
	output := path.Join(t.TempDir(), "text.log")

	logger := NewFromConfig(Config{Level: "warn", Output: output, Format: "text", NoColor: true, DisableTime: true})
	logger.Info("hidden")
	logger.Warn("new value", "value", 6)

	log, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(log), "new value")
	assert.Contains(t, string(log), "value=6")
	assert.NotContains(t, string(log), "hidden")
}
