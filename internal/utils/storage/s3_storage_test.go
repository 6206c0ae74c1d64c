package storage

import (
	"Recipe-Hub/domain"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePresigner struct {
	input   *s3.PutObjectInput
	expires time.Duration
	err     error
}

func (f *fakePresigner) PresignPutObject(_ context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	f.input = params
	opts := s3.PresignOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	f.expires = opts.Expires
	if f.err != nil {
		return nil, f.err
	}
	return &v4.PresignedHTTPRequest{URL: "https://signed.example/" + *params.Key, Method: "PUT"}, nil
}

type fakeDeleter struct {
	keys []string
}

func (f *fakeDeleter) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.keys = append(f.keys, *params.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestCreateUploadURL(t *testing.T) {
	p := &fakePresigner{}
	s := NewAwsS3WithClients(p, &fakeDeleter{}, "media", "https://cdn.example.com/")

	out, err := s.CreateUploadURL(context.Background(), domain.UploadURLRequest{
		FileName:    "My Paneer Tikka.JPG",
		ContentType: "image/jpeg",
		Folder:      "recipes",
	}, "user-1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.Key, "recipes/user-1/"))
	assert.True(t, strings.HasSuffix(out.Key, "-my-paneer-tikka.jpg"))
	assert.Equal(t, "https://cdn.example.com/"+out.Key, out.PublicURL)
	assert.Equal(t, "https://signed.example/"+out.Key, out.UploadURL)
	assert.Equal(t, "image/jpeg", *p.input.ContentType)
	assert.Equal(t, "media", *p.input.Bucket)
	assert.Equal(t, domain.UploadURLTTL, p.expires)
}

func TestCreateUploadURLRejectsInput(t *testing.T) {
	s := NewAwsS3WithClients(&fakePresigner{}, &fakeDeleter{}, "media", "https://cdn.example.com")

	_, err := s.CreateUploadURL(context.Background(), domain.UploadURLRequest{
		FileName: "a.gif", ContentType: "image/gif", Folder: "recipes",
	}, "u")
	assert.ErrorIs(t, err, domain.ErrInvalidContentType)

	_, err = s.CreateUploadURL(context.Background(), domain.UploadURLRequest{
		FileName: "a.png", ContentType: "image/png", Folder: "secrets",
	}, "u")
	assert.ErrorIs(t, err, domain.ErrInvalidUploadFolder)
}

func TestCreateUploadURLPresignFailure(t *testing.T) {
	s := NewAwsS3WithClients(&fakePresigner{err: errors.New("boom")}, &fakeDeleter{}, "media", "https://cdn.example.com")
	_, err := s.CreateUploadURL(context.Background(), domain.UploadURLRequest{
		FileName: "a.png", ContentType: "image/png", Folder: "avatars",
	}, "u")
	assert.Error(t, err)
}

func TestDeleteByPublicURL(t *testing.T) {
	d := &fakeDeleter{}
	s := NewAwsS3WithClients(&fakePresigner{}, d, "media", "https://cdn.example.com")

	require.NoError(t, s.DeleteByPublicURL(context.Background(), "https://cdn.example.com/recipes/u/x.jpg"))
	require.NoError(t, s.DeleteByPublicURL(context.Background(), "https://elsewhere.example/recipes/u/y.jpg"))
	require.NoError(t, s.DeleteByPublicURL(context.Background(), ""))

	assert.Equal(t, []string{"recipes/u/x.jpg"}, d.keys)
}

func TestObjectKeyFallsBackToFile(t *testing.T) {
	key := ObjectKey("avatars", "u", "???.png", ".png")
	assert.True(t, strings.HasSuffix(key, "-file.png"))
}
