package common

import (
	"fmt"
	"os"
	"strings"
)

var (
	// CtxKeys are the gin context keys populated by the auth middlewares.
	CtxKeys struct {
		UserID string
		Email  string
		Name   string
	}

	// ProjectID is the GCP project the service runs in.
	ProjectID string

	// Domain is the public domain of the membership portal.
	Domain string

	GAEService string

	GAEVersion string

	Env string

	// Production flag indicating if app is running the production backend on appengine
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool
)

func init() {
	CtxKeys.UserID = "userId"
	CtxKeys.Email = "email"
	CtxKeys.Name = "name"

	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "fase-membership-dev")
	GAEService = GetEnv("GAE_SERVICE", "membership-api")
	GAEVersion = GetEnv("GAE_VERSION", "localhost")

	switch ProjectID {
	case "fase-membership":
		Env = "production"
		Production = true
		Domain = "members.fase.network"
	default:
		Env = "development"
		Domain = "dev-members.fase.network"
	}

	if GAEVersion == "localhost" {
		IsLocalhost = true
	}
}

// GetEnv returns the value of the environment variable named by key,
// or fallback if it is unset or empty.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}

// FormatAmount formats a monetary amount for display in notifications.
func FormatAmount(amount float64, currency string) string {
	symbol := "$"

	switch strings.ToUpper(currency) {
	case "EUR":
		symbol = "€"
	case "GBP":
		symbol = "£"
	}

	return fmt.Sprintf("%s%.2f", symbol, amount)
}
