package feedsync

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// Uploader is the write-only slice of object storage the export needs.
type Uploader interface {
	Upload(ctx context.Context, bucket, key, contentType string, body []byte) error
}

// S3Uploader stores objects through the AWS SDK. Credentials and region
// come from the default chain supplied by the hosting environment.
type S3Uploader struct {
	api s3iface.S3API
}

func NewS3Uploader() (*S3Uploader, error) {
	sess, err := session.NewSession(&aws.Config{})
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}
	return &S3Uploader{api: s3.New(sess)}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, bucket, key, contentType string, body []byte) error {
	_, err := u.api.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", bucket, key, err)
	}
	return nil
}
