package store

import (
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/yomorun/yomo-lambdas/pkg/yerr"
)

// S3API is the part of the S3 client S3Store uses.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

var _ BlobStore = (*S3Store)(nil)

// S3Store is a BlobStore backed by S3.
type S3Store struct {
	client S3API
}

// NewS3Store returns a BlobStore backed by client.
func NewS3Store(client S3API) *S3Store {
	return &S3Store{client: client}
}

// NewS3StoreFromConfig returns a BlobStore backed by a client created from cfg.
func NewS3StoreFromConfig(cfg aws.Config) *S3Store {
	return NewS3Store(s3.NewFromConfig(cfg))
}

func (s *S3Store) GetObject(ctx context.Context, bucket, key string) (Object, error) {
	const op = "s3.GetObject"

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return Object{}, classifyS3Error(op, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return Object{}, yerr.New(yerr.CodeBackend, op, err)
	}

	return Object{
		Body:        body,
		ContentType: aws.ToString(out.ContentType),
	}, nil
}

func classifyS3Error(op string, err error) error {
	var (
		noSuchKey *types.NoSuchKey
		notFound  *types.NotFound
	)
	if errors.As(err, &noSuchKey) || errors.As(err, &notFound) {
		return yerr.New(yerr.CodeNotFound, op, err)
	}
	return yerr.New(yerr.CodeBackend, op, err)
}
