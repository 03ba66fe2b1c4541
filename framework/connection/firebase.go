package connection

import (
	"context"
	"errors"

	firebase "firebase.google.com/go/v4"
	firebaseAuth "firebase.google.com/go/v4/auth"

	"github.com/faseops/membership/scheduled-tasks/common"
	"github.com/faseops/membership/scheduled-tasks/logger"
)

var ErrFirebaseInitialization = errors.New("firebase initialization error")

type FirebaseClient struct {
	auth *firebaseAuth.Client
}

func NewFirebase(ctx context.Context, log *logger.Logging) (*FirebaseClient, error) {
	l := log.Logger(ctx)

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: common.ProjectID})
	if err != nil {
		l.Errorf("%s: %s", ErrFirebaseInitialization, err)
		return nil, ErrFirebaseInitialization
	}

	auth, err := app.Auth(ctx)
	if err != nil {
		l.Errorf("%s: %s", ErrFirebaseInitialization, err)
		return nil, ErrFirebaseInitialization
	}

	return &FirebaseClient{
		auth,
	}, nil
}

// FirebaseAuth returns the firebase auth admin client.
func (c *Connection) FirebaseAuth(ctx context.Context) *firebaseAuth.Client {
	return c.auth
}
