// Package archive keeps the history of replaced and deleted session keys
// bundles in S3-compatible object storage.
package archive

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/teamkeeper/internal/server/config"
	"github.com/dmitrijs2005/teamkeeper/internal/server/models"
)

// Archiver stores a snapshot of a bundle before it is overwritten or removed.
type Archiver interface {
	Archive(ctx context.Context, b *models.SessionKeysBundle) error
}

// NopArchiver discards snapshots. It is used when no bucket is configured.
type NopArchiver struct{}

func (NopArchiver) Archive(context.Context, *models.SessionKeysBundle) error { return nil }

// ObjectPutter is the part of *s3.Client the archiver needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Archiver struct {
	client ObjectPutter
	bucket string
}

func NewS3Archiver(client ObjectPutter, bucket string) *S3Archiver {
	return &S3Archiver{client: client, bucket: bucket}
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// New returns an S3Archiver built from the server config, or a NopArchiver
// when no bucket is configured.
func New(ctx context.Context, c *sc.Config) (Archiver, error) {
	if c.S3Bucket == "" {
		return NopArchiver{}, nil
	}

	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(c.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			c.S3RootUser,
			c.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(c.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return NewS3Archiver(client, c.S3Bucket), nil
}

// Key returns the object key a bundle snapshot is stored under.
func Key(b *models.SessionKeysBundle) string {
	return fmt.Sprintf("session-keys/%s/%s/%d.asc", b.UserID, b.ID, b.ModifiedAt.UnixNano())
}

func (a *S3Archiver) Archive(ctx context.Context, b *models.SessionKeysBundle) error {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(Key(b)),
		Body:        strings.NewReader(b.Data),
		ContentType: aws.String("application/pgp-encrypted"),
		Metadata: map[string]string{
			"created":  b.CreatedAt.UTC().Format(time.RFC3339Nano),
			"modified": b.ModifiedAt.UTC().Format(time.RFC3339Nano),
		},
	})
	if err != nil {
		return fmt.Errorf("archive %s: %w", Key(b), err)
	}
	return nil
}
