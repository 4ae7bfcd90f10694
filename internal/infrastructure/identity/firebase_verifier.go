package identity

import (
	"context"
	"fmt"

	"gashub/internal/usecase/interfaces"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
)

// FirebaseVerifier checks Firebase ID tokens sent by the mobile and web clients.
type FirebaseVerifier struct {
	client *auth.Client
}

var _ interfaces.IIdentityVerifier = (*FirebaseVerifier)(nil)

func NewFirebaseVerifier(ctx context.Context, app *firebase.App) (*FirebaseVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firebase auth client: %w", err)
	}
	return &FirebaseVerifier{client: client}, nil
}

// VerifyToken returns the Firebase uid the token was issued to.
func (v *FirebaseVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	t, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}
	return t.UID, nil
}
