package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"whitepaper_billing/internal/usecase/interfaces"
)

// S3ArtifactStore uploads exported PDFs to an S3 bucket so documents can be
// fetched again without re-rendering.
//
// Supported env vars (local-friendly):
//   - DOCUMENTS_BUCKET (default: billing-documents)
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - S3_ENDPOINT (optional; e.g. http://localstack:4566, forces path style)

type S3ArtifactStore struct {
	uploader *manager.Uploader
	bucket   string
	region   string
	endpoint string
}

var _ interfaces.IArtifactStore = (*S3ArtifactStore)(nil)

func NewS3ArtifactStore(ctx context.Context) (*S3ArtifactStore, error) {
	region := getenvDefault("AWS_REGION", "us-east-1")
	endpoint := os.Getenv("S3_ENDPOINT")

	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3ArtifactStore{
		uploader: manager.NewUploader(client),
		bucket:   getenvDefault("DOCUMENTS_BUCKET", "billing-documents"),
		region:   region,
		endpoint: endpoint,
	}, nil
}

func (s *S3ArtifactStore) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("[storage][s3] upload failed bucket=%s key=%s err=%v", s.bucket, key, err)
		return "", err
	}

	url := s.objectURL(key)
	log.Printf("[storage][s3] upload success bucket=%s key=%s", s.bucket, key)
	return url, nil
}

func (s *S3ArtifactStore) objectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.endpoint, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
