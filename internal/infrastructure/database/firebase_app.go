package database

import (
	"context"
	"fmt"

	"gashub/internal/config"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewFirebaseApp initialises the Firebase app shared by Firestore and Auth.
// Without a credentials file, application default credentials are used.
func NewFirebaseApp(ctx context.Context, cfg config.FirebaseConfig) (*firebase.App, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise firebase: %w", err)
	}
	return app, nil
}
