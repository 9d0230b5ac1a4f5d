package artifactrepositories

import (
	"context"
	"time"
)

// ArtifactModel is the journal record of one persisted result file.
type ArtifactModel struct {
	ArtifactID  string    `json:"artifactId" bson:"artifactId"`
	Category    string    `json:"category" bson:"category"`
	FileName    string    `json:"fileName" bson:"fileName"`
	RelativeURL string    `json:"relativeUrl" bson:"relativeUrl"`
	Size        int64     `json:"size" bson:"size"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

type ArtifactsRepository interface {
	CreateArtifactInfo(ctx context.Context, info ArtifactModel) error
	GetArtifactInfo(ctx context.Context, artifactID string) (ArtifactModel, error)
}

// ArtifactStorage persists result bytes under a forward-slash key of the
// form <category>/<YYYY-MM-DD>/<name>.<ext>.
type ArtifactStorage interface {
	Save(ctx context.Context, key string, data []byte) error
}
