package config

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

// GetSettingsExample renders an example settings.toml with every option set
func GetSettingsExample() (string, error) {
	debug := false
	maxLogFiles := 1000
	example := Settings{
		Debug:       &debug,
		DraftPath:   "~/fosscope/drafts/article.md",
		Editor:      "vim",
		MaxLogFiles: &maxLogFiles,
		Keys: KeyBindingsConfig{
			"help":          {"?"},
			"edit_identity": {"e"},
		},
		Upstreams: GenreReposConfig{
			Original:    &RepoConfig{Owner: "FOSScope", Repo: "Articles"},
			Translation: &RepoConfig{Owner: "FOSScope", Repo: "TranslateProject"},
		},
		ContributorRepos: GenreReposConfig{
			Translation: &RepoConfig{Repo: "TranslateProject-fork"},
		},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(example); err != nil {
		return "", fmt.Errorf("failed to encode example settings: %w", err)
	}
	return buf.String(), nil
}
