package domain

import "fmt"

// ForkStrategy is how the contributor obtains their fork of the upstream.
// Exactly one value is active, so "both selected" cannot be represented.
type ForkStrategy int

const (
	ForkUnselected ForkStrategy = iota
	ForkUseExisting
	ForkCreateNew
)

func (f ForkStrategy) String() string {
	switch f {
	case ForkUseExisting:
		return "use_existing"
	case ForkCreateNew:
		return "create_new"
	default:
		return "unselected"
	}
}

// RepoIdentity is an owner/repository pair.
type RepoIdentity struct {
	Name  string
	Owner string
}

// String renders the identity the way the editor shows it in read-only mode.
func (r RepoIdentity) String() string {
	return fmt.Sprintf("%s / %s", r.Owner, r.Name)
}

// Slug returns "owner/name".
func (r RepoIdentity) Slug() string {
	return r.Owner + "/" + r.Name
}

// ForkSelection is everything the gate collected for one workflow pass.
type ForkSelection struct {
	Account  string
	Genre    Genre
	Repo     RepoIdentity
	Strategy ForkStrategy
	Upstream RepoIdentity
}

// ValidateSelection checks a selection in gate order and returns the first
// missing item.
func ValidateSelection(sel ForkSelection) error {
	if sel.Strategy == ForkUnselected {
		return ErrNoForkStrategySelected
	}
	if sel.Account == "" {
		return ErrNoAccountSelected
	}
	if sel.Strategy == ForkCreateNew && sel.Repo.Name == "" {
		return ErrNoRepositoryName
	}
	return nil
}

// ExistingForkFor returns the contributor fork assumed when the user picks
// an existing fork. Fields set in configured win; otherwise the account owns
// a repository named like the upstream.
func ExistingForkFor(account string, upstream, configured RepoIdentity) RepoIdentity {
	fork := RepoIdentity{Owner: account, Name: upstream.Name}
	if configured.Owner != "" {
		fork.Owner = configured.Owner
	}
	if configured.Name != "" {
		fork.Name = configured.Name
	}
	return fork
}
