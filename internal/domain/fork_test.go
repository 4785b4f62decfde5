package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSelection(t *testing.T) {
	tests := []struct {
		name     string
		sel      ForkSelection
		expected error
	}{
		{
			name:     "no strategy",
			sel:      ForkSelection{Account: "alice", Repo: RepoIdentity{Owner: "alice", Name: "fork"}},
			expected: ErrNoForkStrategySelected,
		},
		{
			name:     "no strategy wins over missing account",
			sel:      ForkSelection{},
			expected: ErrNoForkStrategySelected,
		},
		{
			name:     "existing fork without account",
			sel:      ForkSelection{Strategy: ForkUseExisting},
			expected: ErrNoAccountSelected,
		},
		{
			name:     "new fork without account reports account first",
			sel:      ForkSelection{Strategy: ForkCreateNew},
			expected: ErrNoAccountSelected,
		},
		{
			name:     "new fork without name",
			sel:      ForkSelection{Strategy: ForkCreateNew, Account: "alice", Repo: RepoIdentity{Owner: "alice"}},
			expected: ErrNoRepositoryName,
		},
		{
			name: "existing fork ignores empty name",
			sel:  ForkSelection{Strategy: ForkUseExisting, Account: "alice"},
		},
		{
			name: "new fork complete",
			sel:  ForkSelection{Strategy: ForkCreateNew, Account: "alice", Repo: RepoIdentity{Owner: "alice", Name: "articles"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSelection(tt.sel)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestValidateSelection_CreateNewEmptyNameAlwaysFails(t *testing.T) {
	for _, account := range []string{"alice", "bob", "x"} {
		for _, owner := range []string{"", "alice", "org"} {
			sel := ForkSelection{
				Account:  account,
				Strategy: ForkCreateNew,
				Repo:     RepoIdentity{Owner: owner},
			}
			assert.ErrorIs(t, ValidateSelection(sel), ErrNoRepositoryName, "account=%q owner=%q", account, owner)
		}
	}
}

func TestRepoIdentityString(t *testing.T) {
	r := RepoIdentity{Owner: "alice", Name: "TranslateProject"}
	assert.Equal(t, "alice / TranslateProject", r.String())
	assert.Equal(t, "alice/TranslateProject", r.Slug())
}

func TestExistingForkFor(t *testing.T) {
	upstream := DefaultUpstreams[GenreTranslation]
	tests := []struct {
		name       string
		configured RepoIdentity
		want       RepoIdentity
	}{
		{name: "nothing configured", want: RepoIdentity{Owner: "alice", Name: "TranslateProject"}},
		{name: "repo only", configured: RepoIdentity{Name: "tp"}, want: RepoIdentity{Owner: "alice", Name: "tp"}},
		{name: "owner only", configured: RepoIdentity{Owner: "lcteam"}, want: RepoIdentity{Owner: "lcteam", Name: "TranslateProject"}},
		{name: "both", configured: RepoIdentity{Owner: "lcteam", Name: "tp"}, want: RepoIdentity{Owner: "lcteam", Name: "tp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExistingForkFor("alice", upstream, tt.configured))
		})
	}
}
