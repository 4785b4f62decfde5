package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionApply_EmptyFieldsKeepValues(t *testing.T) {
	s := Session{AccountName: "alice", AccessToken: "old", AssistantKey: "sk-1"}

	updated := s.Apply(CredentialUpdate{AccessToken: "tok"})

	assert.Equal(t, "alice", updated.AccountName)
	assert.Equal(t, "tok", updated.AccessToken)
	assert.Equal(t, "sk-1", updated.AssistantKey)
	assert.Equal(t, "old", s.AccessToken, "original value must not change")
}

func TestSessionApply_AllFields(t *testing.T) {
	updated := Session{}.Apply(CredentialUpdate{
		AccountName:  "bob",
		AccessToken:  "ghp_x",
		AssistantKey: "sk-2",
	})

	assert.Equal(t, Session{AccountName: "bob", AccessToken: "ghp_x", AssistantKey: "sk-2"}, updated)
}

func TestSessionApply_AllEmptyIsNoop(t *testing.T) {
	s := Session{AccountName: "alice", AccessToken: "tok", AssistantKey: "key"}
	assert.Equal(t, s, s.Apply(CredentialUpdate{}))
}

func TestSessionMaskedToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{"empty", "", ""},
		{"short", "abc", "•••"},
		{"exactly four", "abcd", "••••"},
		{"long", "ghp_123456", "••••••3456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Session{AccessToken: tt.token}.MaskedToken())
		})
	}
}
