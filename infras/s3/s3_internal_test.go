package s3

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impressions/config"
	"impressions/infras/otel/mocks"
)

type fakeObjectAPI struct {
	put     *s3.PutObjectInput
	body    []byte
	deleted []string
	err     error
}

func (f *fakeObjectAPI) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.put = params
	f.body, _ = io.ReadAll(params.Body)

	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjectAPI) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.deleted = append(f.deleted, aws.ToString(params.Key))

	return &s3.DeleteObjectOutput{}, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "prints"
	cfg.External.S3.PublicDomain = "https://cdn.example.com/"
	cfg.External.S3.APIEndpoint = "https://storage.example.com"

	return cfg
}

func TestUploadFileBytes(t *testing.T) {
	api := &fakeObjectAPI{}
	svc := newWithClient(api, testConfig(), mocks.NewOtel())

	url, err := svc.UploadFileBytes(context.Background(), "uploads", "impression-1.png", "image/png", []byte("png"))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/uploads/impression-1.png", url)
	assert.Equal(t, "prints", aws.ToString(api.put.Bucket))
	assert.Equal(t, "uploads/impression-1.png", aws.ToString(api.put.Key))
	assert.Equal(t, "image/png", aws.ToString(api.put.ContentType))
	assert.Equal(t, []byte("png"), api.body)
}

func TestUploadFileBytes_Error(t *testing.T) {
	svc := newWithClient(&fakeObjectAPI{err: errors.New("denied")}, testConfig(), mocks.NewOtel())

	url, err := svc.UploadFileBytes(context.Background(), "uploads", "a.png", "image/png", nil)

	assert.Empty(t, url)
	assert.Error(t, err)
}

func TestDeleteFile(t *testing.T) {
	api := &fakeObjectAPI{}
	svc := newWithClient(api, testConfig(), mocks.NewOtel())

	require.NoError(t, svc.DeleteFile(context.Background(), "uploads/a.png"))
	assert.Equal(t, []string{"uploads/a.png"}, api.deleted)
}

func TestGetObjectNameFromURL(t *testing.T) {
	svc := newWithClient(&fakeObjectAPI{}, testConfig(), mocks.NewOtel())

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "public domain", url: "https://cdn.example.com/uploads/a.png", want: "uploads/a.png"},
		{name: "api endpoint", url: "https://storage.example.com/prints/uploads/b.png", want: "uploads/b.png"},
		{name: "external host", url: "https://images.example.org/c.png", want: ""},
		{name: "bare domain", url: "https://cdn.example.com/", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.GetObjectNameFromURL(tt.url))
		})
	}
}
