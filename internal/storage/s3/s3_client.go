package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"wanderplan/internal/config"
	"wanderplan/internal/domain"
	"wanderplan/internal/port"
)

// sourceDisposition makes presigned links open the document in the browser.
const sourceDisposition = `inline; filename="source.md"`

// documentStore keeps raw trip plan documents in S3.
type documentStore struct {
	client       *s3.Client
	presigner    *s3.PresignClient
	uploader     *manager.Uploader
	maxReadBytes int64
}

// NewDocumentStore creates an S3-backed ObjectStorage for plan documents.
// Downloads larger than maxReadBytes fail instead of being read into memory;
// zero disables the limit.
func NewDocumentStore(cfg *config.S3Config, maxReadBytes int64) (port.ObjectStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		// MinIO and LocalStack need path-style addressing.
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &documentStore{
		client:       client,
		presigner:    s3.NewPresignClient(client),
		uploader:     manager.NewUploader(client),
		maxReadBytes: maxReadBytes,
	}, nil
}

func (d *documentStore) Upload(ctx context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	put := &s3.PutObjectInput{
		Bucket:             aws.String(input.Bucket),
		Key:                aws.String(input.Key),
		Body:               input.Body,
		ContentType:        aws.String(input.ContentType),
		ContentDisposition: aws.String(sourceDisposition),
		Metadata:           input.Metadata,
	}
	if input.Size > 0 {
		put.ContentLength = aws.Int64(input.Size)
	}

	result, err := d.uploader.Upload(ctx, put)
	if err != nil {
		return nil, fmt.Errorf("s3 upload %s: %w", input.Key, err)
	}

	return &port.UploadOutput{
		Location: result.Location,
		ETag:     aws.ToString(result.ETag),
	}, nil
}

func (d *documentStore) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	result, err := d.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var missing *types.NoSuchKey
		if errors.As(err, &missing) {
			return nil, fmt.Errorf("s3 download %s: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("s3 download %s: %w", key, err)
	}
	defer result.Body.Close()

	if d.maxReadBytes > 0 && aws.ToInt64(result.ContentLength) > d.maxReadBytes {
		return nil, fmt.Errorf("s3 download %s: %w", key, domain.ErrDocumentTooLarge)
	}

	var body io.Reader = result.Body
	if d.maxReadBytes > 0 {
		body = io.LimitReader(result.Body, d.maxReadBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("s3 download read %s: %w", key, err)
	}
	if d.maxReadBytes > 0 && int64(len(data)) > d.maxReadBytes {
		return nil, fmt.Errorf("s3 download %s: %w", key, domain.ErrDocumentTooLarge)
	}
	return data, nil
}

func (d *documentStore) Delete(ctx context.Context, bucket, key string) error {
	if _, err := d.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("s3 delete %s: %w", key, err)
	}
	return nil
}

func (d *documentStore) GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error) {
	result, err := d.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket:                     aws.String(bucket),
		Key:                        aws.String(key),
		ResponseContentDisposition: aws.String(sourceDisposition),
	}, s3.WithPresignExpires(time.Duration(expirySeconds)*time.Second))
	if err != nil {
		return "", fmt.Errorf("s3 presign %s: %w", key, err)
	}
	return result.URL, nil
}
