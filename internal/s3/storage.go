package s3

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	conf "github.com/trunov/resizehub/internal/config"
)

type S3 struct {
	Region             string
	Endpoint           string // non-empty for MinIO/R2 style deployments
	AwsAccessKeyId     string
	AwsSecretAccessKey string

	S3Client *awss3.Client
	Uploader *manager.Uploader
}

func NewStorage(cfg *conf.S3Config) (*S3, error) {
	st := &S3{
		Region:             cfg.Region,
		Endpoint:           cfg.Endpoint,
		AwsAccessKeyId:     cfg.AccessKeyID,
		AwsSecretAccessKey: cfg.SecretKey,
	}
	if err := st.Run(); err != nil {
		return nil, err
	}

	return st, nil
}

func (s *S3) Run() error {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(s.Region),
	}
	// Explicit keys win; otherwise the default chain (env, shared
	// profile, instance role) decides.
	if s.AwsAccessKeyId != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.AwsAccessKeyId, s.AwsSecretAccessKey, "",
		)))
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(), loadOpts...)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	s.S3Client = awss3.NewFromConfig(cfg, func(o *awss3.Options) {
		if s.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.Endpoint)
			o.UsePathStyle = true
		}
	})
	s.Uploader = manager.NewUploader(s.S3Client)

	return nil
}

// Download fetches the whole object into memory. Buckets come per call
// because notifications may reference any source bucket.
func (s *S3) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	out, err := s.S3Client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download %q: %w", key, err)
	}
	defer out.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(out.Body); err != nil {
		return nil, fmt.Errorf("failed to read body for %q: %w", key, err)
	}

	return buf.Bytes(), nil
}

// Upload blocks until the put completes so callers observe storage
// failures in line.
func (s *S3) Upload(ctx context.Context, bucket, key, contentType string, payload []byte, metadata map[string]string) error {
	_, err := s.Uploader.Upload(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String(contentType),
		Metadata:    metadata,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %q: %w", key, err)
	}

	return nil
}
