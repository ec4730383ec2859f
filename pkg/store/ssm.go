package store

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/yomorun/yomo-lambdas/pkg/yerr"
)

// SSMAPI is the part of the SSM client SSMStore uses.
type SSMAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
	PutParameter(ctx context.Context, params *ssm.PutParameterInput, optFns ...func(*ssm.Options)) (*ssm.PutParameterOutput, error)
}

var _ ParameterStore = (*SSMStore)(nil)

// SSMStore is a ParameterStore backed by the SSM parameter store.
type SSMStore struct {
	client SSMAPI
}

// NewSSMStore returns a ParameterStore backed by client.
func NewSSMStore(client SSMAPI) *SSMStore {
	return &SSMStore{client: client}
}

// NewSSMStoreFromConfig returns a ParameterStore backed by a client created from cfg.
func NewSSMStoreFromConfig(cfg aws.Config) *SSMStore {
	return NewSSMStore(ssm.NewFromConfig(cfg))
}

func (s *SSMStore) GetParameter(ctx context.Context, name string, decrypt bool) (string, error) {
	const op = "ssm.GetParameter"

	out, err := s.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(decrypt),
	})
	if err != nil {
		return "", classifySSMError(op, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", yerr.Errorf(yerr.CodeBackend, op, "parameter %s has no value", name)
	}

	return *out.Parameter.Value, nil
}

func (s *SSMStore) PutParameter(ctx context.Context, p Parameter) error {
	const op = "ssm.PutParameter"

	typ := types.ParameterTypeString
	if p.Secure {
		typ = types.ParameterTypeSecureString
	}

	_, err := s.client.PutParameter(ctx, &ssm.PutParameterInput{
		Name:      aws.String(p.Name),
		Value:     aws.String(p.Value),
		Type:      typ,
		Overwrite: aws.Bool(p.Overwrite),
	})
	if err != nil {
		return classifySSMError(op, err)
	}
	return nil
}

func classifySSMError(op string, err error) error {
	var notFound *types.ParameterNotFound
	if errors.As(err, &notFound) {
		return yerr.New(yerr.CodeNotFound, op, err)
	}
	return yerr.New(yerr.CodeBackend, op, err)
}
