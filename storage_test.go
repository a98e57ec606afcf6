package feedsync

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
)

type capturingS3 struct {
	s3iface.S3API
	input *s3.PutObjectInput
	err   error
}

func (c *capturingS3) PutObjectWithContext(_ aws.Context, in *s3.PutObjectInput, _ ...request.Option) (*s3.PutObjectOutput, error) {
	c.input = in
	if c.err != nil {
		return nil, c.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Uploader_PutParams(t *testing.T) {
	api := &capturingS3{}
	u := &S3Uploader{api: api}

	err := u.Upload(context.Background(), "autocaris-data", "inzeraty/inzeraty_usti.xml", "application/xml", []byte("<cars/>"))

	assert.NoError(t, err)
	assert.Equal(t, "autocaris-data", aws.StringValue(api.input.Bucket))
	assert.Equal(t, "inzeraty/inzeraty_usti.xml", aws.StringValue(api.input.Key))
	assert.Equal(t, "application/xml", aws.StringValue(api.input.ContentType))

	body, err := io.ReadAll(api.input.Body)
	assert.NoError(t, err)
	assert.Equal(t, []byte("<cars/>"), body)
}

func TestS3Uploader_ErrorNamesDestination(t *testing.T) {
	u := &S3Uploader{api: &capturingS3{err: errors.New("quota exceeded")}}

	err := u.Upload(context.Background(), "autocaris-data", "inzeraty/inzeraty_usti.xml", "application/xml", nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "s3://autocaris-data/inzeraty/inzeraty_usti.xml")
	assert.Contains(t, err.Error(), "quota exceeded")
}
