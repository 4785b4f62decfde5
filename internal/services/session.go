package services

import (
	"context"
	"fmt"

	"github.com/fosscope/toolkit/internal/domain"
	"github.com/fosscope/toolkit/internal/logging"
	"github.com/fosscope/toolkit/internal/ports"
)

// SessionService owns the contributor's credentials. Save is the only way
// to change them; everyone else reads a copy through Session.
type SessionService struct {
	session  domain.Session
	verifier ports.CredentialVerifier
}

// NewSessionService creates a SessionService holding an empty session
func NewSessionService(verifier ports.CredentialVerifier) *SessionService {
	return &SessionService{
		verifier: verifier,
	}
}

// Session returns a copy of the current credentials
func (s *SessionService) Session() domain.Session {
	return s.session
}

// Save applies a partial credential update. Empty fields keep the stored
// value. The account service is consulted with the resulting pair.
func (s *SessionService) Save(ctx context.Context, update domain.CredentialUpdate) (domain.Session, error) {
	next := s.session.Apply(update)

	logging.Logger.Info("Saving credentials",
		"account", next.AccountName,
		"account_changed", next.AccountName != s.session.AccountName,
		"token_changed", next.AccessToken != s.session.AccessToken,
		"assistant_key_changed", next.AssistantKey != s.session.AssistantKey)

	if err := s.verifier.Verify(ctx, next.AccountName, next.AccessToken); err != nil {
		logging.Logger.Error("Failed to verify credentials", "account", next.AccountName, "error", err)
		return s.session, fmt.Errorf("failed to verify credentials: %w", err)
	}

	s.session = next
	return s.session, nil
}
