package local

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fosscope/toolkit/internal/domain"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	backend, err := NewBackend()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })
	return backend
}

func TestBackend_VerifyNeverStoresToken(t *testing.T) {
	backend := newTestBackend(t)
	ctx := context.Background()

	require.NoError(t, backend.Verify(ctx, "alice", "ghp_secret"))

	requests, err := backend.Requests(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, KindVerify, requests[0].Kind)
	assert.Equal(t, "alice", requests[0].Account)
	assert.NotContains(t, requests[0].Name+requests[0].Owner+requests[0].Strategy, "ghp_secret")
}

func TestBackend_SubmitForkSelection(t *testing.T) {
	backend := newTestBackend(t)
	ctx := context.Background()
	sel := domain.ForkSelection{
		Account:  "alice",
		Genre:    domain.GenreTranslation,
		Repo:     domain.RepoIdentity{Owner: "alice", Name: "TranslateProject"},
		Strategy: domain.ForkUseExisting,
		Upstream: domain.DefaultUpstreams[domain.GenreTranslation],
	}

	receipt, err := backend.SubmitForkSelection(ctx, sel)
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.ID)
	assert.Equal(t, sel.Repo, receipt.Repo)

	requests, err := backend.Requests(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, KindForkSelection, requests[0].Kind)
	assert.Equal(t, "translation", requests[0].Genre)
	assert.Equal(t, "use_existing", requests[0].Strategy)
	assert.Equal(t, "FOSScope", requests[0].UpstreamOwner)
}

func TestBackend_CreateRepositoryIsIdempotent(t *testing.T) {
	backend := newTestBackend(t)
	ctx := context.Background()
	repo := domain.RepoIdentity{Owner: "alice", Name: "articles-fork"}
	upstream := domain.DefaultUpstreams[domain.GenreOriginal]

	first, err := backend.CreateRepository(ctx, repo, upstream)
	require.NoError(t, err)
	second, err := backend.CreateRepository(ctx, repo, upstream)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, repo, second.Repo)

	var count int64
	require.NoError(t, backend.db.Model(&RepositoryModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	requests, err := backend.Requests(ctx)
	require.NoError(t, err)
	assert.Len(t, requests, 2, "both calls are journaled")
}

func TestBackend_JournalsAreIsolated(t *testing.T) {
	a := newTestBackend(t)
	b := newTestBackend(t)
	ctx := context.Background()

	require.NoError(t, a.Verify(ctx, "alice", "tok"))

	requests, err := b.Requests(ctx)
	require.NoError(t, err)
	assert.Empty(t, requests)
}
