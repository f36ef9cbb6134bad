// Package publish uploads a written manifest to S3-compatible object storage.
package publish

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cenkalti/backoff/v4"

	"github.com/adminde/household-data/internal/ctxlog"
)

// maxAttempts bounds the number of PutObject calls per upload.
const maxAttempts = 5

// Config selects the upload target. An empty Bucket disables publishing.
type Config struct {
	Bucket   string
	Prefix   string
	Region   string
	Endpoint string
}

// Enabled reports whether a bucket is configured.
func (c Config) Enabled() bool {
	return c.Bucket != ""
}

// PutObjectAPI is the subset of the S3 client the publisher needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher uploads files to a single bucket.
type Publisher struct {
	client  PutObjectAPI
	cfg     Config
	backoff func() backoff.BackOff
}

// New creates a Publisher backed by an S3 client built from the default AWS
// credential chain. A custom endpoint switches to path-style addressing, as
// required by MinIO and similar services.
func New(ctx context.Context, cfg Config) (*Publisher, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	if cfg.Region == "" {
		cfg.Region = awsCfg.Region
	}
	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Publisher around an existing client.
func NewWithClient(client PutObjectAPI, cfg Config) *Publisher {
	return &Publisher{
		client: client,
		cfg:    cfg,
		backoff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
	}
}

// Key returns the object key a local file is stored under.
func (p *Publisher) Key(file string) string {
	name := filepath.Base(file)
	prefix := strings.Trim(p.cfg.Prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// URL returns the address of an uploaded object.
func (p *Publisher) URL(key string) string {
	if p.cfg.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(p.cfg.Endpoint, "/"), p.cfg.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", p.cfg.Bucket, p.cfg.Region, key)
}

// Publish uploads file and returns its URL. Failed uploads are retried with
// exponential backoff until maxAttempts is reached or ctx is done.
func (p *Publisher) Publish(ctx context.Context, file string) (string, error) {
	logger := ctxlog.FromContext(ctx).With("bucket", p.cfg.Bucket)

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", file, err)
	}
	key := p.Key(file)

	attempt := 0
	upload := func() error {
		attempt++
		_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:        aws.String(p.cfg.Bucket),
			Key:           aws.String(key),
			Body:          bytes.NewReader(data),
			ContentLength: aws.Int64(int64(len(data))),
			ContentType:   aws.String("application/json"),
		})
		if err != nil {
			logger.Warn("Upload attempt failed.", "key", key, "attempt", attempt, "error", err)
		}
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(p.backoff(), maxAttempts-1), ctx)
	if err := backoff.Retry(upload, policy); err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s after %d attempts: %w", file, p.cfg.Bucket, attempt, err)
	}

	url := p.URL(key)
	logger.Info("Data package published.", "key", key, "bytes", len(data), "url", url)
	return url, nil
}
