package storageconnections

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioBlockStorageProductionConnectionConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Location  string
	UseSSL    bool
}

type MinioBlockStorageProductionConnection struct {
	config MinioBlockStorageProductionConnectionConfig
	client *minio.Client
}

var _ MinioBlockStorageConnection = (*MinioBlockStorageProductionConnection)(nil)

func NewMinioBlockStorageProductionConnection(ctx context.Context, config MinioBlockStorageProductionConnectionConfig) (conn MinioBlockStorageProductionConnection, err error) {
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
	})

	if err != nil {
		return
	}

	makeBucketOptions := minio.MakeBucketOptions{Region: config.Location}
	if err = client.MakeBucket(ctx, config.Bucket, makeBucketOptions); err != nil {
		// the bucket may already exist from a previous run
		if exists, existsErr := client.BucketExists(ctx, config.Bucket); existsErr != nil || !exists {
			return
		}
		err = nil
	}

	conn = MinioBlockStorageProductionConnection{
		config: config,
		client: client,
	}

	return
}

func (c *MinioBlockStorageProductionConnection) PutObject(
	ctx context.Context,
	objectName string,
	objectSize int64,
	mimeType string,
	reader io.Reader,
) error {
	_, err := c.client.PutObject(
		ctx,
		c.config.Bucket,
		objectName,
		reader,
		objectSize,
		minio.PutObjectOptions{ContentType: mimeType},
	)
	return err
}
