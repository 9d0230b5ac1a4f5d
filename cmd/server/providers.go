package main

import (
	"context"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	artifactrepositories "picbridge/pkg/artifacts/repositories"
	storageconnections "picbridge/pkg/artifacts/repositories/connections"
	"picbridge/pkg/pictech"
	"picbridge/pkg/removal"
)

func InitializePictechConfig() pictech.Config {
	config := pictech.Config{
		BaseURL:   os.Getenv("PICBRIDGE_PICTECH_BASE_URL"),
		AccountID: os.Getenv("PICBRIDGE_PICTECH_ACCOUNT_ID"),
		SecretKey: os.Getenv("PICBRIDGE_PICTECH_SECRET_KEY"),
	}

	if config.BaseURL == "" {
		log.Panic("PICBRIDGE_PICTECH_BASE_URL is required environment variable")
	}

	if _, err := url.Parse(config.BaseURL); err != nil {
		log.Panicf("Error ocurred when parsing PICBRIDGE_PICTECH_BASE_URL: %s", err)
	}

	if config.AccountID == "" {
		log.Panic("PICBRIDGE_PICTECH_ACCOUNT_ID is required environment variable")
	}

	if config.SecretKey == "" {
		log.Panic("PICBRIDGE_PICTECH_SECRET_KEY is required environment variable")
	}

	return config
}

func InitializeMongoConnectionConfig() storageconnections.ArtifactDBConfig {
	config := storageconnections.ArtifactDBConfig{
		ConnectionString: os.Getenv("PICBRIDGE_MONGO_CONNECTION_STRING"),
	}

	if config.ConnectionString == "" {
		log.Panic("PICBRIDGE_MONGO_CONNECTION_STRING is required environment variable")
	}

	if _, err := url.Parse(config.ConnectionString); err != nil {
		log.Panicf("Error ocurred when parsing PICBRIDGE_MONGO_CONNECTION_STRING: %s", err)
	}

	return config
}

func InitializeMongoConnection(ctx context.Context, mongoConfig storageconnections.ArtifactDBConfig) storageconnections.ArtifactDBConnection {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	connection, err := storageconnections.NewArtifactDBProductionConnection(ctx, mongoConfig)
	if err != nil {
		log.Panicf("Error ocurred when initializing MongoDB connection: %s", err)
	}

	return connection
}

func InitializeMinioConnectionConfig() storageconnections.MinioBlockStorageProductionConnectionConfig {
	config := storageconnections.MinioBlockStorageProductionConnectionConfig{
		Endpoint:  os.Getenv("PICBRIDGE_MINIO_ENDPOINT"),
		AccessKey: os.Getenv("PICBRIDGE_MINIO_ACCESS_KEY"),
		SecretKey: os.Getenv("PICBRIDGE_MINIO_SECRET_KEY"),
		Location:  os.Getenv("PICBRIDGE_MINIO_LOCATION"),
		Bucket:    os.Getenv("PICBRIDGE_MINIO_BUCKET"),
		UseSSL:    os.Getenv("PICBRIDGE_MINIO_SSL") == "true",
	}

	if config.Endpoint == "" {
		log.Panic("PICBRIDGE_MINIO_ENDPOINT is required environment variable")
	}

	if config.AccessKey == "" {
		log.Panic("PICBRIDGE_MINIO_ACCESS_KEY is required environment variable")
	}

	if config.SecretKey == "" {
		log.Panic("PICBRIDGE_MINIO_SECRET_KEY is required environment variable")
	}

	if config.Location == "" {
		config.Location = "us-east-1"
	}

	if config.Bucket == "" {
		log.Panic("PICBRIDGE_MINIO_BUCKET is required environment variable")
	}

	return config
}

func InitializeMinioConnection(ctx context.Context, minioConfig storageconnections.MinioBlockStorageProductionConnectionConfig) storageconnections.MinioBlockStorageConnection {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	connection, err := storageconnections.NewMinioBlockStorageProductionConnection(ctx, minioConfig)
	if err != nil {
		log.Panicf("Error ocurred when initializing Minio connection: %s", err)
	}

	return &connection
}

func InitializeUploadRootDir() string {
	uploadDir := os.Getenv("PICBRIDGE_UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	return uploadDir
}

// InitializeArtifactStorage picks the storage backend; local disk is the
// default, MinIO is opt-in.
func InitializeArtifactStorage(ctx context.Context) artifactrepositories.ArtifactStorage {
	backend := os.Getenv("PICBRIDGE_STORAGE_BACKEND")

	switch backend {
	case "", "disk":
		return artifactrepositories.NewLocalArtifactStorage(InitializeUploadRootDir())

	case "minio":
		minioConfig := InitializeMinioConnectionConfig()
		return artifactrepositories.NewMinioArtifactStorage(InitializeMinioConnection(ctx, minioConfig))

	default:
		log.Panicf("unknown PICBRIDGE_STORAGE_BACKEND value: %s", backend)
		return nil
	}
}

func InitializeRemovalConfig() removal.RemovalServiceConfig {
	// zero values select the built-in 15 attempts at 1.5s spacing
	return removal.RemovalServiceConfig{}
}

func InitializeAllowedOrigins() []string {
	allowedOrigins := strings.Split(os.Getenv("PICBRIDGE_ALLOWED_ORIGINS"), ",")

	if len(allowedOrigins) == 0 || allowedOrigins[0] == "" && len(allowedOrigins) == 1 {
		allowedOrigins = []string{"*"}
	}

	return allowedOrigins
}

func InitializeListenAddr() string {
	port := os.Getenv("PICBRIDGE_PORT")
	if port == "" {
		port = "8000"
	}

	return ":" + port
}
