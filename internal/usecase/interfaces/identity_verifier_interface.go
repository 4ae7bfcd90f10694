package interfaces

import "context"

//go:generate mockgen -source=identity_verifier_interface.go -destination=mocks/identity_verifier_interface_mock.go -package=mock_interfaces

// IIdentityVerifier checks a session token issued by the managed identity
// provider and returns the account id it belongs to.
type IIdentityVerifier interface {
	VerifyToken(ctx context.Context, token string) (userID string, err error)
}
