package secretstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/smithy-go"
)

// SecretsManagerClient defines the AWS API surface used by SecretsManagerStore.
type SecretsManagerClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerStore implements Store over AWS Secrets Manager.
// It is safe for concurrent use.
type SecretsManagerStore struct {
	client SecretsManagerClient
}

// Config contains configuration for the AWS-backed store. All fields are
// optional: with none set, the SDK's default credential and region chain
// applies.
type Config struct {
	Region      string
	AccessKeyID string
	SecretKey   string
	Endpoint    string // Optional: for localstack and compatible services
}

// Option defines a function that configures SecretsManagerStore.
type Option func(*storeOptions)

type storeOptions struct {
	client        SecretsManagerClient
	configOptions []func(*config.LoadOptions) error
	clientOptions []func(*secretsmanager.Options)
}

// WithClient sets a custom pre-configured client.
// Useful for testing with mocks.
func WithClient(client SecretsManagerClient) Option {
	return func(o *storeOptions) {
		o.client = client
	}
}

// WithConfigOption adds a custom AWS config option.
func WithConfigOption(option func(*config.LoadOptions) error) Option {
	return func(o *storeOptions) {
		o.configOptions = append(o.configOptions, option)
	}
}

// WithClientOption adds a custom Secrets Manager client option.
func WithClientOption(option func(*secretsmanager.Options)) Option {
	return func(o *storeOptions) {
		o.clientOptions = append(o.clientOptions, option)
	}
}

// NewSecretsManagerStore creates a new Secrets Manager backed store.
func NewSecretsManagerStore(ctx context.Context, cfg Config, opts ...Option) (*SecretsManagerStore, error) {
	options := &storeOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// If a pre-configured client is provided, use it directly.
	if options.client != nil {
		return &SecretsManagerStore{client: options.client}, nil
	}

	awsOptions := []func(*config.LoadOptions) error{}
	if cfg.Region != "" {
		awsOptions = append(awsOptions, config.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		awsOptions = append(awsOptions,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretKey,
				"",
			)),
		)
	}
	awsOptions = append(awsOptions, options.configOptions...)

	awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToLoadConfig, err)
	}

	client := secretsmanager.NewFromConfig(awsConfig, func(o *secretsmanager.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		for _, opt := range options.clientOptions {
			opt(o)
		}
	})

	return &SecretsManagerStore{client: client}, nil
}

// GetSecret returns the string value of the secret with the given id or ARN.
func (s *SecretsManagerStore) GetSecret(ctx context.Context, id string) (string, error) {
	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(id),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ResourceNotFoundException" {
			return "", fmt.Errorf("%w: %s", ErrSecretNotFound, id)
		}
		return "", errors.Join(ErrFailedToRetrieve, err)
	}
	if out.SecretString == nil || *out.SecretString == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptySecret, id)
	}
	return *out.SecretString, nil
}

// GetSecretKey treats the secret as a JSON object and returns one of its
// string fields, for secrets shared between several consumers.
func (s *SecretsManagerStore) GetSecretKey(ctx context.Context, id, key string) (string, error) {
	raw, err := s.GetSecret(ctx, id)
	if err != nil {
		return "", err
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return "", errors.Join(ErrInvalidSecretJSON, err)
	}

	value, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("%w: %q in %s", ErrKeyNotFound, key, id)
	}
	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q is not a string", ErrInvalidSecretJSON, key)
	}
	return str, nil
}
