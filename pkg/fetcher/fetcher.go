// Package fetcher serves objects of a blob store to an application load balancer.
package fetcher

import (
	"context"
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
	"github.com/yomorun/yomo-lambdas/pkg/store"
	"github.com/yomorun/yomo-lambdas/pkg/yerr"
	"github.com/yomorun/yomo-lambdas/pkg/ylog"
)

// DefaultKey is served for the root path.
const DefaultKey = "index.html"

// NotFoundBody is the page of every failed request.
const NotFoundBody = `
<!DOCTYPE html>
<html>
<head>
    <title>404 Not Found</title>
</head>
<body>
    <h1>404 Not Found</h1>
    <p>The requested URL was not found on this server.</p>
</body>
</html>
`

// Fetcher maps a request path to an object key and returns the object.
type Fetcher struct {
	blobs  store.BlobStore
	bucket string
	logger *slog.Logger
}

// New returns a Fetcher serving bucket from blobs. An empty bucket is
// accepted, every request then fails with the not found page.
func New(blobs store.BlobStore, bucket string, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		blobs:  blobs,
		bucket: bucket,
		logger: logger,
	}
}

// Key normalizes a request path into an object key.
func Key(p string) string {
	key := path.Clean(strings.Trim(p, "/"))
	if key == "." || key == "" {
		return DefaultKey
	}
	return key
}

// Fetch returns the object the request path refers to.
func (f *Fetcher) Fetch(ctx context.Context, p string) (store.Object, error) {
	if f.bucket == "" {
		return store.Object{}, yerr.Errorf(yerr.CodeConfig, "fetcher", "S3_BUCKET is not set")
	}

	key := Key(p)
	o, err := f.blobs.GetObject(ctx, f.bucket, key)
	if err != nil {
		return store.Object{}, err
	}
	if !utf8.Valid(o.Body) {
		return store.Object{}, yerr.Errorf(yerr.CodeParse, "fetcher", "object %s is not utf-8 text", key)
	}
	return o, nil
}

// Handle is the lambda handler, it never returns an error: any failure
// is answered with the not found page.
func (f *Fetcher) Handle(ctx context.Context, req events.ALBTargetGroupRequest) (events.ALBTargetGroupResponse, error) {
	o, err := f.Fetch(ctx, req.Path)
	if err != nil {
		ylog.WithRequest(ctx, f.logger).Debug("fetch failed", "path", req.Path, "code", yerr.CodeOf(err), "err", err)
		return NotFound(), nil
	}

	return events.ALBTargetGroupResponse{
		StatusCode:        http.StatusOK,
		StatusDescription: statusDescription(http.StatusOK),
		Headers:           map[string]string{"Content-Type": o.ContentType},
		Body:              string(o.Body),
	}, nil
}

// NotFound returns the fixed not found response.
func NotFound() events.ALBTargetGroupResponse {
	return events.ALBTargetGroupResponse{
		StatusCode:        http.StatusNotFound,
		StatusDescription: statusDescription(http.StatusNotFound),
		Headers:           map[string]string{"Content-Type": "text/html"},
		Body:              NotFoundBody,
	}
}

func statusDescription(code int) string {
	return strconv.Itoa(code) + " " + http.StatusText(code)
}
