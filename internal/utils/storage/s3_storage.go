package storage

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/utils"
	"context"
	"fmt"
	"log"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type (
	// Presigner is the subset of the S3 presign client used for uploads.
	Presigner interface {
		PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	}

	ObjectDeleter interface {
		DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	}

	MediaStorage interface {
		CreateUploadURL(ctx context.Context, req domain.UploadURLRequest, userID string) (domain.UploadURL, error)
		DeleteByPublicURL(ctx context.Context, publicURL string) error
	}

	AwsS3 struct {
		presigner Presigner
		client    ObjectDeleter
		bucket    string
		publicURL string
		now       func() time.Time
	}
)

func NewAwsS3() *AwsS3 {
	region := utils.GetConfig("AWS_S3_REGION")
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Printf("error loading aws config: %v", err)
	}
	client := s3.NewFromConfig(cfg)
	bucket := utils.GetConfig("AWS_S3_BUCKET")

	publicURL := utils.GetConfig("AWS_S3_PUBLIC_URL")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}

	return NewAwsS3WithClients(s3.NewPresignClient(client), client, bucket, publicURL)
}

func NewAwsS3WithClients(presigner Presigner, client ObjectDeleter, bucket, publicURL string) *AwsS3 {
	return &AwsS3{
		presigner: presigner,
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		now:       time.Now,
	}
}

func (s *AwsS3) CreateUploadURL(ctx context.Context, req domain.UploadURLRequest, userID string) (domain.UploadURL, error) {
	ext, ok := domain.AllowedContentTypes[req.ContentType]
	if !ok {
		return domain.UploadURL{}, domain.ErrInvalidContentType
	}
	if !slices.Contains(domain.AllowedUploadFolders, req.Folder) {
		return domain.UploadURL{}, domain.ErrInvalidUploadFolder
	}

	key := ObjectKey(req.Folder, userID, req.FileName, ext)
	out, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(req.ContentType),
	}, s3.WithPresignExpires(domain.UploadURLTTL))
	if err != nil {
		return domain.UploadURL{}, fmt.Errorf("presign upload: %w", err)
	}

	return domain.UploadURL{
		UploadURL: out.URL,
		PublicURL: s.GetPublicLinkKey(key),
		Key:       key,
		ExpiresAt: s.now().Add(domain.UploadURLTTL),
	}, nil
}

func (s *AwsS3) GetPublicLinkKey(key string) string {
	return s.publicURL + "/" + key
}

// DeleteByPublicURL removes the object behind a URL previously issued by this bucket.
// URLs that point elsewhere are ignored.
func (s *AwsS3) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	prefix := s.publicURL + "/"
	if publicURL == "" || !strings.HasPrefix(publicURL, prefix) {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(strings.TrimPrefix(publicURL, prefix)),
	})
	return err
}

// ObjectKey builds folder/userID/uuid-name.ext with the file name reduced to a safe slug.
func ObjectKey(folder, userID, fileName, ext string) string {
	base := strings.TrimSuffix(path.Base(fileName), path.Ext(fileName))
	var b strings.Builder
	for _, r := range strings.ToLower(base) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == ' ' || r == '.':
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "file"
	}
	return fmt.Sprintf("%s/%s/%s-%s%s", folder, userID, uuid.NewString(), slug, ext)
}
