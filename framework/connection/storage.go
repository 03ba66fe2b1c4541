package connection

import (
	"context"
	"errors"

	"cloud.google.com/go/storage"

	"github.com/faseops/membership/scheduled-tasks/logger"
)

var ErrCloudStorageInitialization = errors.New("cloud storage initialization error")

type CloudStorageClient struct {
	gcs *storage.Client
}

func NewCloudStorage(ctx context.Context, log *logger.Logging) (*CloudStorageClient, error) {
	l := log.Logger(ctx)

	gcs, err := storage.NewClient(ctx)
	if err != nil {
		l.Errorf("%s: %s", ErrCloudStorageInitialization, err)
		return nil, ErrCloudStorageInitialization
	}

	return &CloudStorageClient{
		gcs,
	}, nil
}
