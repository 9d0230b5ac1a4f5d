package storageconnections

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ArtifactDBConfig struct {
	ConnectionString string
}

type ArtifactDBProductionConnection struct {
	config ArtifactDBConfig
	client *mongo.Client
}

var _ ArtifactDBConnection = (*ArtifactDBProductionConnection)(nil)

func NewArtifactDBProductionConnection(ctx context.Context, config ArtifactDBConfig) (ArtifactDBConnection, error) {
	client, err := mongo.NewClient(options.Client().ApplyURI(config.ConnectionString))
	if err != nil {
		return nil, err
	}

	err = client.Connect(ctx)
	if err != nil {
		return nil, err
	}

	return &ArtifactDBProductionConnection{
		config: config,
		client: client,
	}, nil
}

func (c *ArtifactDBProductionConnection) Collection(collectionName string) *mongo.Collection {
	return c.client.Database("picbridge").Collection(collectionName)
}
