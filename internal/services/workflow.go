package services

import (
	"context"
	"fmt"

	"github.com/fosscope/toolkit/internal/domain"
	"github.com/fosscope/toolkit/internal/logging"
	"github.com/fosscope/toolkit/internal/ports"
)

// WorkflowService finalizes gate selections against the fork backend
type WorkflowService struct {
	contributors map[domain.Genre]domain.RepoIdentity
	forks        ports.ForkService
	upstreams    map[domain.Genre]domain.RepoIdentity
}

// NewWorkflowService creates a new WorkflowService. upstreams maps each
// genre to its canonical repository; missing genres use the defaults.
// contributors holds the configured existing forks and may be nil.
func NewWorkflowService(forks ports.ForkService, upstreams, contributors map[domain.Genre]domain.RepoIdentity) *WorkflowService {
	merged := make(map[domain.Genre]domain.RepoIdentity, len(domain.DefaultUpstreams))
	for g, repo := range domain.DefaultUpstreams {
		merged[g] = repo
	}
	for g, repo := range upstreams {
		merged[g] = repo
	}
	return &WorkflowService{
		contributors: contributors,
		forks:        forks,
		upstreams:    merged,
	}
}

// Upstream returns the canonical repository of a genre
func (s *WorkflowService) Upstream(g domain.Genre) domain.RepoIdentity {
	return s.upstreams[g]
}

// ContributorRepo returns the configured existing fork of a genre. Unset
// fields are empty.
func (s *WorkflowService) ContributorRepo(g domain.Genre) domain.RepoIdentity {
	return s.contributors[g]
}

// CompleteSelection validates sel and, when valid, hands it to the fork
// backend. Validation errors are returned unwrapped so callers can show
// them as they are.
func (s *WorkflowService) CompleteSelection(ctx context.Context, sel domain.ForkSelection) (ports.ForkReceipt, error) {
	if err := domain.ValidateSelection(sel); err != nil {
		logging.Logger.Debug("Fork selection incomplete",
			"genre", sel.Genre.String(),
			"strategy", sel.Strategy.String(),
			"reason", err.Error())
		return ports.ForkReceipt{}, err
	}

	if sel.Upstream == (domain.RepoIdentity{}) {
		sel.Upstream = s.Upstream(sel.Genre)
	}

	if sel.Strategy == domain.ForkCreateNew {
		if _, err := s.forks.CreateRepository(ctx, sel.Repo, sel.Upstream); err != nil {
			logging.Logger.Error("Failed to create repository", "repo", sel.Repo.Slug(), "error", err)
			return ports.ForkReceipt{}, fmt.Errorf("failed to create repository: %w", err)
		}
	}

	receipt, err := s.forks.SubmitForkSelection(ctx, sel)
	if err != nil {
		logging.Logger.Error("Failed to submit fork selection", "genre", sel.Genre.String(), "error", err)
		return ports.ForkReceipt{}, fmt.Errorf("failed to submit fork selection: %w", err)
	}

	logging.Logger.Info("Fork selection finalized",
		"account", sel.Account,
		"strategy", sel.Strategy.String(),
		"genre", sel.Genre.String(),
		"owner", sel.Repo.Owner,
		"repo", sel.Repo.Name,
		"upstream", sel.Upstream.Slug(),
		"receipt", receipt.ID)

	return receipt, nil
}
