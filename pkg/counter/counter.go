// Package counter increments an integer held by a parameter store.
//
// An update is a read followed by a write, and the two are not atomic.
// Two concurrent invocations can read the same value and both write
// value+1, so one increment is lost. No locking or compare-and-swap is
// done, the store is expected to see a low invocation rate.
package counter

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/yomorun/yomo-lambdas/pkg/config"
	"github.com/yomorun/yomo-lambdas/pkg/store"
	"github.com/yomorun/yomo-lambdas/pkg/yerr"
	"github.com/yomorun/yomo-lambdas/pkg/ylog"
)

const (
	// SuccessMessage is the message of a successful update.
	SuccessMessage = "Parameter updated successfully"
	// FailureMessage is the message of a failed update.
	FailureMessage = "Error updating parameter"
)

// Options configures an Updater.
type Options struct {
	// Secure reads the parameter decrypted and writes it as a SecureString.
	Secure bool
	// LogLevel controls the success log line.
	LogLevel config.LogLevel
}

// Result is the body of a successful update.
type Result struct {
	Message  string `json:"message"`
	OldValue int64  `json:"oldValue"`
	NewValue int64  `json:"newValue"`
}

// Failure is the body of a failed update.
type Failure struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Updater increments the parameter Name.
type Updater struct {
	params store.ParameterStore
	name   string
	opts   Options
	logger *slog.Logger
}

// New returns an Updater of parameter name.
func New(params store.ParameterStore, name string, opts Options, logger *slog.Logger) *Updater {
	return &Updater{
		params: params,
		name:   name,
		opts:   opts,
		logger: logger,
	}
}

// Increment reads the counter, adds one and writes it back.
// Nothing is written if the stored value is not an integer or is
// already the largest int64.
func (u *Updater) Increment(ctx context.Context) (oldValue, newValue int64, err error) {
	raw, err := u.params.GetParameter(ctx, u.name, u.opts.Secure)
	if err != nil {
		return 0, 0, err
	}

	oldValue, err = strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, 0, yerr.New(yerr.CodeParse, "counter", err)
	}
	if oldValue == math.MaxInt64 {
		return 0, 0, yerr.Errorf(yerr.CodeParse, "counter", "value %d cannot be incremented without overflow", oldValue)
	}
	newValue = oldValue + 1

	err = u.params.PutParameter(ctx, store.Parameter{
		Name:      u.name,
		Value:     strconv.FormatInt(newValue, 10),
		Secure:    u.opts.Secure,
		Overwrite: true,
	})
	if err != nil {
		return 0, 0, err
	}

	return oldValue, newValue, nil
}

// Handle is the lambda handler, the request is ignored. It never returns
// an error: any failure is answered with status 500.
//
// The 500 body carries the error text, which can expose backend details
// to the caller.
func (u *Updater) Handle(ctx context.Context, _ events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := ylog.WithRequest(ctx, u.logger)

	oldValue, newValue, err := u.Increment(ctx)
	if err != nil {
		logger.Error("update parameter", "parameter", u.name, "code", yerr.CodeOf(err), "err", err)
		return response(http.StatusInternalServerError, Failure{Message: FailureMessage, Error: err.Error()}), nil
	}

	if u.opts.LogLevel == config.LogWarn {
		logger.Warn("new value is " + strconv.FormatInt(newValue, 10))
	}

	return response(http.StatusOK, Result{Message: SuccessMessage, OldValue: oldValue, NewValue: newValue}), nil
}

func response(code int, body any) events.APIGatewayProxyResponse {
	buf, err := json.Marshal(body)
	if err != nil {
		// Result and Failure always marshal.
		panic(err)
	}
	return events.APIGatewayProxyResponse{StatusCode: code, Body: string(buf)}
}
