package ports

import "context"

// CredentialVerifier checks an account/token pair with the account service
type CredentialVerifier interface {
	Verify(ctx context.Context, accountName, accessToken string) error
}
