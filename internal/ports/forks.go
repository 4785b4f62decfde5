package ports

import (
	"context"
	"time"

	"github.com/fosscope/toolkit/internal/domain"
)

// ForkReceipt is what the fork service hands back for a recorded request
type ForkReceipt struct {
	ID         string
	Repo       domain.RepoIdentity
	RecordedAt time.Time
}

// ForkSelectionSubmitter records the fork chosen for a workflow pass
type ForkSelectionSubmitter interface {
	SubmitForkSelection(ctx context.Context, sel domain.ForkSelection) (ForkReceipt, error)
}

// RepositoryCreator creates a contributor fork of upstream named repo
type RepositoryCreator interface {
	CreateRepository(ctx context.Context, repo, upstream domain.RepoIdentity) (ForkReceipt, error)
}

// ForkService is the composite interface of the repository-forking backend
type ForkService interface {
	ForkSelectionSubmitter
	RepositoryCreator
}
