package objectstore

import (
	"context"
	"io"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	putIn    *s3.PutObjectInput
	putBody  []byte
	deleteIn *s3.DeleteObjectInput
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.putIn = in
	f.putBody, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleteIn = in
	return &s3.DeleteObjectOutput{}, nil
}

type fakePresigner struct {
	in  *s3.GetObjectInput
	url string
}

func (f *fakePresigner) PresignGetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	f.in = in
	return &v4.PresignedHTTPRequest{URL: f.url}, nil
}

func TestS3StorePut(t *testing.T) {
	fake := &fakeS3{}
	s := NewS3Store(fake, &fakePresigner{}, "event-photos-originals")

	err := s.Put(context.Background(), "photos/mia-1-abc.jpg", []byte("jpegbytes"), "image/jpeg")
	require.NoError(t, err)

	require.NotNil(t, fake.putIn)
	assert.Equal(t, "event-photos-originals", *fake.putIn.Bucket)
	assert.Equal(t, "photos/mia-1-abc.jpg", *fake.putIn.Key)
	assert.Equal(t, "image/jpeg", *fake.putIn.ContentType)
	assert.Equal(t, []byte("jpegbytes"), fake.putBody)
}

func TestS3StoreDelete(t *testing.T) {
	fake := &fakeS3{}
	s := NewS3Store(fake, &fakePresigner{}, "event-photos-originals")

	require.NoError(t, s.Delete(context.Background(), "photos/gone.jpg"))
	require.NotNil(t, fake.deleteIn)
	assert.Equal(t, "photos/gone.jpg", *fake.deleteIn.Key)
}

func TestS3StoreSignedGetURL(t *testing.T) {
	presigner := &fakePresigner{url: "https://example.com/signed"}
	s := NewS3Store(&fakeS3{}, presigner, "event-photos-originals")

	url, err := s.SignedGetURL(context.Background(), "photos/a.jpg", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/signed", url)
	assert.Equal(t, "photos/a.jpg", *presigner.in.Key)
}
