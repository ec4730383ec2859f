// Package echo answers a load balancer request with the request itself.
package echo

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/yomorun/yomo-lambdas/pkg/ylog"
)

// Body is the response body.
type Body struct {
	Message   string                       `json:"message"`
	Timestamp string                       `json:"timestamp"`
	Event     events.ALBTargetGroupRequest `json:"event"`
}

// Responder echoes requests.
type Responder struct {
	message string
	logger  *slog.Logger
	now     func() time.Time
}

// New returns a Responder greeting with message.
func New(message string, logger *slog.Logger) *Responder {
	return &Responder{message: message, logger: logger, now: time.Now}
}

// Handle is the lambda handler.
func (r *Responder) Handle(ctx context.Context, req events.ALBTargetGroupRequest) (events.ALBTargetGroupResponse, error) {
	if event, err := json.MarshalIndent(req, "", "  "); err == nil {
		ylog.WithRequest(ctx, r.logger).Info("Event: " + string(event))
	}

	buf, err := json.Marshal(Body{
		Message:   r.message,
		Timestamp: r.now().UTC().Format("2006-01-02T15:04:05.000Z"),
		Event:     req,
	})
	if err != nil {
		return events.ALBTargetGroupResponse{}, err
	}

	return events.ALBTargetGroupResponse{
		StatusCode:        http.StatusOK,
		StatusDescription: "200 OK",
		Headers:           map[string]string{"Content-Type": "application/json"},
		Body:              string(buf),
	}, nil
}
