package service

import (
	"context"
	"encoding/json"

	"github.com/stripe/stripe-go/v74/client"

	"github.com/faseops/membership/scheduled-tasks/secretmanager"
)

type Client struct {
	*client.API
}

type stripeSecret struct {
	APIKey string `json:"api_key"`
}

func NewStripeClient(ctx context.Context) (*Client, error) {
	data, err := secretmanager.AccessSecretLatestVersion(ctx, secretmanager.SecretStripe)
	if err != nil {
		return nil, err
	}

	var secret stripeSecret

	if err := json.Unmarshal(data, &secret); err != nil {
		return nil, err
	}

	var stripeClient client.API

	stripeClient.Init(secret.APIKey, nil)

	return &Client{&stripeClient}, nil
}
