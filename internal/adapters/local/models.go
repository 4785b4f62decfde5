package local

import "time"

// Request kinds recorded in the journal
const (
	KindCreateRepository = "create_repository"
	KindForkSelection    = "fork_selection"
	KindVerify           = "verify"
)

// RequestModel is one call that would have gone to the backend.
// Secrets are never stored.
type RequestModel struct {
	Account       string `gorm:"not null;default:''"`
	CreatedAt     time.Time
	Genre         string `gorm:"not null;default:''"`
	ID            string `gorm:"primaryKey"`
	Kind          string `gorm:"not null;index:idx_kind;check:kind IN ('verify','fork_selection','create_repository')"`
	Name          string `gorm:"not null;default:''"`
	Owner         string `gorm:"not null;default:''"`
	Strategy      string `gorm:"not null;default:''"`
	UpstreamName  string `gorm:"not null;default:''"`
	UpstreamOwner string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (RequestModel) TableName() string { return "requests" }

// RepositoryModel is a fork the backend was asked to create
type RepositoryModel struct {
	CreatedAt    time.Time
	ID           string `gorm:"primaryKey"`
	Name         string `gorm:"not null;uniqueIndex:idx_owner_name"`
	Owner        string `gorm:"not null;uniqueIndex:idx_owner_name"`
	UpstreamSlug string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (RepositoryModel) TableName() string { return "repositories" }
