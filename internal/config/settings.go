package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/fosscope/toolkit/internal/domain"
)

// KeyBindingValue supports "a" or ["up", "k"] in TOML
type KeyBindingValue []string

// UnmarshalTOML implements toml.Unmarshaler
func (kv *KeyBindingValue) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		if v != "" {
			*kv = []string{v}
		}
		return nil
	case []any:
		keys := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("key binding must be a string, got %T", item)
			}
			keys = append(keys, s)
		}
		*kv = keys
		return nil
	default:
		return fmt.Errorf("key binding must be a string or a list of strings, got %T", data)
	}
}

// KeyBindingsConfig holds custom key binding overrides.
// Keys are binding names (e.g., "help", "quit"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks the overrides and the bindings they produce once merged
// over defaults (binding name to default keys, from ui.GetDefaultKeyBindings).
// A key may serve two bindings only when mayShare allows the pair.
func (k KeyBindingsConfig) Validate(defaults map[string][]string, mayShare func(a, b string) bool) error {
	for name, keys := range k {
		if _, ok := defaults[name]; !ok {
			return fmt.Errorf("unknown key binding '%s'", name)
		}
		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
		}
	}

	names := make([]string, 0, len(defaults))
	for name := range defaults {
		names = append(names, name)
	}
	sort.Strings(names)

	keyToActions := make(map[string][]string)
	for _, name := range names {
		keys := defaults[name]
		if custom, ok := k[name]; ok && len(custom) > 0 {
			keys = custom
		}

		for _, key := range keys {
			for _, existing := range keyToActions[key] {
				if existing == name || (mayShare != nil && mayShare(existing, name)) {
					continue
				}
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToActions[key] = append(keyToActions[key], name)
		}
	}

	return nil
}

// RepoConfig names a repository in the settings file. Empty fields keep
// the value they override.
type RepoConfig struct {
	Owner string `toml:"owner,omitempty"`
	Repo  string `toml:"repo,omitempty"`
}

// GenreReposConfig holds one repository override per genre
type GenreReposConfig struct {
	Original    *RepoConfig `toml:"original,omitempty"`
	Translation *RepoConfig `toml:"translation,omitempty"`
}

func (c GenreReposConfig) forGenre(g domain.Genre) *RepoConfig {
	switch g {
	case domain.GenreOriginal:
		return c.Original
	case domain.GenreTranslation:
		return c.Translation
	}
	return nil
}

// Settings represents the structure of $TOOLKIT_HOME/settings.toml.
// Credentials are deliberately absent: they live in memory only.
type Settings struct {
	Debug       *bool             `toml:"debug,omitempty"`
	DraftPath   string            `toml:"draft_path,omitempty"`
	Editor      string            `toml:"editor,omitempty"`
	Keys        KeyBindingsConfig `toml:"keys,omitempty"`
	MaxLogFiles *int              `toml:"max_log_files,omitempty"`
	Upstreams   GenreReposConfig  `toml:"upstreams,omitempty"`

	// ContributorRepos names the contributor's existing fork per genre.
	// The owner falls back to the account, the repo to the upstream name.
	ContributorRepos GenreReposConfig `toml:"contributor_repo,omitempty"`
}

// Upstream returns the canonical repository for a genre, applying overrides
// from the settings file on top of the built-in defaults.
func (s *Settings) Upstream(g domain.Genre) domain.RepoIdentity {
	upstream := domain.DefaultUpstreams[g]
	if s == nil {
		return upstream
	}

	if override := s.Upstreams.forGenre(g); override != nil {
		if override.Owner != "" {
			upstream.Owner = override.Owner
		}
		if override.Repo != "" {
			upstream.Name = override.Repo
		}
	}
	return upstream
}

// UpstreamMap returns the upstream of every selectable genre.
func (s *Settings) UpstreamMap() map[domain.Genre]domain.RepoIdentity {
	upstreams := make(map[domain.Genre]domain.RepoIdentity, len(domain.Genres))
	for _, g := range domain.Genres {
		upstreams[g] = s.Upstream(g)
	}
	return upstreams
}

// ContributorRepo returns the configured existing fork of a genre. Fields
// left unset are empty; see domain.ExistingForkFor.
func (s *Settings) ContributorRepo(g domain.Genre) domain.RepoIdentity {
	if s == nil {
		return domain.RepoIdentity{}
	}
	override := s.ContributorRepos.forGenre(g)
	if override == nil {
		return domain.RepoIdentity{}
	}
	return domain.RepoIdentity{Owner: override.Owner, Name: override.Repo}
}

// ContributorRepoMap returns the configured existing forks. Genres without
// an override are omitted.
func (s *Settings) ContributorRepoMap() map[domain.Genre]domain.RepoIdentity {
	repos := make(map[domain.Genre]domain.RepoIdentity)
	for _, g := range domain.Genres {
		if repo := s.ContributorRepo(g); repo != (domain.RepoIdentity{}) {
			repos[g] = repo
		}
	}
	return repos
}

// LoadSettings loads settings from $TOOLKIT_HOME/settings.toml.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFile(GetSettingsPath())
}

// LoadSettingsFile loads settings from path.
func LoadSettingsFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	md, err := toml.Decode(string(data), &settings)
	if err != nil {
		return nil, fmt.Errorf("invalid settings.toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("invalid settings.toml: unknown keys %s", strings.Join(keys, ", "))
	}

	if settings.Editor != "" {
		settings.Editor = ExpandPath(settings.Editor)
	}
	if settings.DraftPath != "" {
		settings.DraftPath = ExpandPath(settings.DraftPath)
	}

	return &settings, nil
}

// SaveSettings writes settings to $TOOLKIT_HOME/settings.toml
func SaveSettings(settings *Settings) error {
	return SaveSettingsFile(GetSettingsPath(), settings)
}

// SaveSettingsFile writes settings to path, creating its directory
func SaveSettingsFile(path string, settings *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(settings); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
