package secretmanager

import (
	"context"
	"fmt"
	"sync"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"

	"github.com/faseops/membership/scheduled-tasks/common"
)

type SecretName string

// List of configured secrets in Secret Manager
const (
	SecretSendgrid    SecretName = "sendgrid"
	SecretStripe      SecretName = "stripe"
	SecretGoogleDrive SecretName = "google-drive"
	SecretAdminAPIKey SecretName = "admin-api-key"
)

const (
	latestVersion = "latest"
)

var (
	state = make(map[string][]byte)
	mutex = &sync.Mutex{}

	preload = []SecretName{
		SecretSendgrid, SecretStripe, SecretGoogleDrive,
	}
)

func init() {
	ctx := context.Background()

	// preload to state commonly used secrets concurrently
	wg := &sync.WaitGroup{}
	wg.Add(len(preload))

	for _, secret := range preload {
		go func(ctx context.Context, secret SecretName) {
			defer wg.Done()
			AccessSecretLatestVersion(ctx, secret)
		}(ctx, secret)
	}

	wg.Wait()
}

// AccessSecretLatestVersion utility function to fetch the latest version of a secret payload
func AccessSecretLatestVersion(ctx context.Context, secret SecretName) ([]byte, error) {
	return AccessSecretVersion(ctx, string(secret), latestVersion)
}

// AccessSecretVersion fetch payload of a secret's version
func AccessSecretVersion(ctx context.Context, secret, version string) ([]byte, error) {
	name := secretResourceName(common.ProjectID, secret, version)

	mutex.Lock()
	v, prs := state[name]
	mutex.Unlock()

	if prs {
		return v, nil
	}

	sm, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, err
	}

	defer sm.Close()

	accessSecretVersionRes, err := sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return nil, err
	}

	data := accessSecretVersionRes.Payload.GetData()

	mutex.Lock()
	state[name] = data
	mutex.Unlock()

	return data, nil
}

func secretResourceName(projectID, secret, version string) string {
	return fmt.Sprintf("projects/%s/secrets/%s/versions/%s", projectID, secret, version)
}
