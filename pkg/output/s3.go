package output

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"go.uber.org/zap"
)

// DefaultUploadTimeout bounds a single upload when none is configured
const DefaultUploadTimeout = 30 * time.Second

// S3Config describes an S3-compatible bucket
type S3Config struct {
	Bucket        string
	Endpoint      string // empty uses the AWS endpoint for Region
	Region        string
	Prefix        string // key prefix, e.g. "renders/nightly"
	AccessKey     string
	SecretKey     string
	UploadTimeout time.Duration
}

// NewS3Client creates a path-style client with static credentials
func NewS3Client(cfg S3Config) (s3iface.S3API, error) {
	awsConfig := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 session: %w", err)
	}
	return s3.New(sess), nil
}

// Publisher uploads finished renders to a bucket
type Publisher struct {
	client  s3iface.S3API
	bucket  string
	prefix  string
	timeout time.Duration
	logger  *zap.Logger
}

// NewPublisher creates a publisher. A nil logger discards output.
func NewPublisher(client s3iface.S3API, cfg S3Config, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.UploadTimeout
	if timeout <= 0 {
		timeout = DefaultUploadTimeout
	}
	return &Publisher{
		client:  client,
		bucket:  cfg.Bucket,
		prefix:  strings.Trim(cfg.Prefix, "/"),
		timeout: timeout,
		logger:  logger,
	}
}

// Key returns the object key for a file produced by a render job
func (p *Publisher) Key(jobID, name string) string {
	return path.Join(p.prefix, jobID, name)
}

// Upload puts data at key, giving up after the publisher's timeout
func (p *Publisher) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	_, err := p.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	p.logger.Info("uploaded render",
		zap.String("bucket", p.bucket),
		zap.String("key", key),
		zap.Int("bytes", len(data)),
	)
	return nil
}

// PublishFile uploads a local file under the job's prefix and returns its key
func (p *Publisher) PublishFile(ctx context.Context, jobID, filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	key := p.Key(jobID, filepath.Base(filePath))
	if err := p.Upload(ctx, key, data, ContentType(filePath)); err != nil {
		return "", err
	}
	return key, nil
}

// ContentType returns the MIME type for an output file name
func ContentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ppm":
		return "image/x-portable-pixmap"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".tif", ".tiff":
		return "image/tiff"
	case ".bmp":
		return "image/bmp"
	default:
		return "application/octet-stream"
	}
}
