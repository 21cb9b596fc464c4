package composite

import (
	"context"

	opensearchclient "github.com/opensearch-project/opensearch-go/v2"

	"github.com/kingrain94/bhms-api/internal/config"
	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/internal/repository/opensearch"
	"github.com/kingrain94/bhms-api/internal/repository/postgres"
)

type compositeRepository struct {
	repository.PostgresRepository
	searchRepo repository.TenantSearchRepository
}

func NewCompositeRepository(dbConnections *config.DatabaseConnections, osClient *opensearchclient.Client, osConfig *config.OpenSearchConfig) repository.Repository {
	return New(postgres.NewPostgresRepository(dbConnections), opensearch.NewTenantSearchRepository(osClient, osConfig))
}

// New assembles a repository from already built parts.
func New(postgresRepo repository.PostgresRepository, searchRepo repository.TenantSearchRepository) repository.Repository {
	return &compositeRepository{
		PostgresRepository: postgresRepo,
		searchRepo:         searchRepo,
	}
}

func (r *compositeRepository) TenantSearch() repository.TenantSearchRepository {
	return r.searchRepo
}

// Transaction runs fn in one database transaction. The search index is not
// transactional; callers index after commit.
func (r *compositeRepository) Transaction(ctx context.Context, fn func(tx repository.Repository) error) error {
	return r.PostgresRepository.RunInTx(ctx, func(tx repository.PostgresRepository) error {
		return fn(New(tx, r.searchRepo))
	})
}
