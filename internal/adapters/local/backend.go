package local

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/fosscope/toolkit/internal/domain"
	"github.com/fosscope/toolkit/internal/logging"
	"github.com/fosscope/toolkit/internal/ports"
)

// Backend stands in for the account and forking services. Every call is
// recorded in an in-memory SQLite journal and logged; nothing leaves the
// process and nothing survives it.
type Backend struct {
	db *gorm.DB
}

var (
	_ ports.CredentialVerifier = (*Backend)(nil)
	_ ports.ForkService        = (*Backend)(nil)
)

// NewBackend opens a fresh in-memory journal
func NewBackend() (*Backend, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	// Each connection to :memory: is its own database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get journal connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&RequestModel{}, &RepositoryModel{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate journal: %w", err)
	}

	logging.Logger.Debug("Local backend journal opened")
	return &Backend{db: db}, nil
}

// Verify records the verification request and always succeeds
func (b *Backend) Verify(ctx context.Context, accountName, accessToken string) error {
	req := RequestModel{
		Account: accountName,
		ID:      uuid.New().String(),
		Kind:    KindVerify,
	}
	if err := b.db.WithContext(ctx).Create(&req).Error; err != nil {
		return fmt.Errorf("failed to record verification: %w", err)
	}

	logging.Logger.Info("Credentials recorded (no account service configured)",
		"account", accountName,
		"has_token", accessToken != "")
	return nil
}

// SubmitForkSelection records the finalized fork selection
func (b *Backend) SubmitForkSelection(ctx context.Context, sel domain.ForkSelection) (ports.ForkReceipt, error) {
	req := RequestModel{
		Account:       sel.Account,
		Genre:         sel.Genre.String(),
		ID:            uuid.New().String(),
		Kind:          KindForkSelection,
		Name:          sel.Repo.Name,
		Owner:         sel.Repo.Owner,
		Strategy:      sel.Strategy.String(),
		UpstreamName:  sel.Upstream.Name,
		UpstreamOwner: sel.Upstream.Owner,
	}
	if err := b.db.WithContext(ctx).Create(&req).Error; err != nil {
		return ports.ForkReceipt{}, fmt.Errorf("failed to record fork selection: %w", err)
	}

	logging.Logger.Info("Fork selection recorded (no fork service configured)",
		"id", req.ID,
		"account", sel.Account,
		"strategy", sel.Strategy.String(),
		"genre", sel.Genre.String(),
		"repo", sel.Repo.Slug())

	return ports.ForkReceipt{ID: req.ID, Repo: sel.Repo, RecordedAt: req.CreatedAt}, nil
}

// CreateRepository records a fork creation. Asking twice for the same
// owner/name returns the first record.
func (b *Backend) CreateRepository(ctx context.Context, repo, upstream domain.RepoIdentity) (ports.ForkReceipt, error) {
	var created RepositoryModel
	err := b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where(RepositoryModel{Owner: repo.Owner, Name: repo.Name}).
			Attrs(RepositoryModel{ID: uuid.New().String(), UpstreamSlug: upstream.Slug()}).
			FirstOrCreate(&created)
		if result.Error != nil {
			return result.Error
		}

		return tx.Create(&RequestModel{
			ID:            uuid.New().String(),
			Kind:          KindCreateRepository,
			Name:          repo.Name,
			Owner:         repo.Owner,
			UpstreamName:  upstream.Name,
			UpstreamOwner: upstream.Owner,
		}).Error
	})
	if err != nil {
		return ports.ForkReceipt{}, fmt.Errorf("failed to record repository creation: %w", err)
	}

	logging.Logger.Info("Repository creation recorded (no fork service configured)",
		"id", created.ID,
		"repo", repo.Slug(),
		"upstream", upstream.Slug())

	return ports.ForkReceipt{
		ID:         created.ID,
		Repo:       domain.RepoIdentity{Owner: created.Owner, Name: created.Name},
		RecordedAt: created.CreatedAt,
	}, nil
}

// Requests returns the journal in recording order
func (b *Backend) Requests(ctx context.Context) ([]RequestModel, error) {
	var requests []RequestModel
	if err := b.db.WithContext(ctx).Order("created_at ASC, rowid ASC").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return requests, nil
}

// Close releases the journal. Its contents are gone afterwards.
func (b *Backend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
