package domain

import "strings"

// Session holds the contributor's identity for the life of the program.
// It is never persisted.
type Session struct {
	AccessToken  string
	AccountName  string
	AssistantKey string
}

// CredentialUpdate carries the values typed into the credential screen.
// Empty fields mean "keep the current value".
type CredentialUpdate struct {
	AccessToken  string
	AccountName  string
	AssistantKey string
}

// Apply returns a copy of s with every non-empty field of u applied.
func (s Session) Apply(u CredentialUpdate) Session {
	if u.AccountName != "" {
		s.AccountName = u.AccountName
	}
	if u.AccessToken != "" {
		s.AccessToken = u.AccessToken
	}
	if u.AssistantKey != "" {
		s.AssistantKey = u.AssistantKey
	}
	return s
}

// MaskedToken returns the access token with everything but the last four
// characters hidden, for display and logs.
func (s Session) MaskedToken() string {
	return maskSecret(s.AccessToken)
}

// MaskedAssistantKey returns the assistant API key masked like MaskedToken.
func (s Session) MaskedAssistantKey() string {
	return maskSecret(s.AssistantKey)
}

func maskSecret(secret string) string {
	runes := []rune(secret)
	if len(runes) <= 4 {
		return strings.Repeat("•", len(runes))
	}
	return strings.Repeat("•", len(runes)-4) + string(runes[len(runes)-4:])
}
