package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sc "github.com/aislekit/aislekit/internal/server/config"
)

func testDocumentService() *DocumentService {
	cfg := &sc.Config{}
	cfg.LoadDefaults()
	return NewDocumentService(cfg)
}

func stubPresignSeams(t *testing.T) {
	t.Helper()

	origPut := presignPutObject
	origGet := presignGetObject
	t.Cleanup(func() {
		presignPutObject = origPut
		presignGetObject = origGet
	})

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "https://storage.test/put/" + aws.ToString(in.Key)}, nil
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "https://storage.test/get/" + aws.ToString(in.Key)}, nil
	}
}

func TestDocumentService_PresignUpload(t *testing.T) {
	stubPresignSeams(t)
	svc := testDocumentService()

	url, key, err := svc.PresignUpload(context.Background(), "c1", "d1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "couples/c1/documents/d1/"), "key %q should be couple scoped", key)
	assert.Equal(t, "https://storage.test/put/"+key, url)
}

func TestDocumentService_PresignDownload(t *testing.T) {
	stubPresignSeams(t)
	svc := testDocumentService()

	url, err := svc.PresignDownload(context.Background(), "couples/c1/documents/d1/blob")
	require.NoError(t, err)
	assert.Equal(t, "https://storage.test/get/couples/c1/documents/d1/blob", url)
}

func TestDocumentService_PresignUpload_Error(t *testing.T) {
	stubPresignSeams(t)

	orig := presignPutObject
	t.Cleanup(func() { presignPutObject = orig })
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign failed")
	}

	svc := testDocumentService()
	_, _, err := svc.PresignUpload(context.Background(), "c1", "d1")
	assert.Error(t, err)
}
