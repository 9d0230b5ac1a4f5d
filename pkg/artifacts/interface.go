package artifacts

import (
	"context"

	artifactrepositories "picbridge/pkg/artifacts/repositories"
)

// ArtifactService persists result images under date-partitioned keys and
// journals their metadata. Returned URLs are category-rooted relative paths
// using forward slashes regardless of platform.
type ArtifactService interface {
	StoreBytes(ctx context.Context, category, filenameHint string, data []byte) (relativeURL string, err error)
	StoreBase64(ctx context.Context, category, filenameHint, encoded string) (relativeURL string, err error)
	GetArtifactInfo(ctx context.Context, artifactID string) (artifactrepositories.ArtifactModel, error)
}
