package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/kingrain94/bhms-api/internal/config"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/repository"
)

// tenantSearchRepository keeps one tenant index per owner.
type tenantSearchRepository struct {
	client *opensearch.Client
	config *config.OpenSearchConfig
}

func NewTenantSearchRepository(client *opensearch.Client, config *config.OpenSearchConfig) repository.TenantSearchRepository {
	return &tenantSearchRepository{
		client: client,
		config: config,
	}
}

func (r *tenantSearchRepository) Index(ctx context.Context, doc *domain.TenantDocument) error {
	if err := r.CreateIndex(ctx, doc.OwnerID); err != nil {
		return fmt.Errorf("failed to ensure index exists: %w", err)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal tenant: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index:      r.config.GetTenantIndexName(doc.OwnerID),
		DocumentID: doc.ID,
		Body:       strings.NewReader(string(data)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

// Delete removes a tenant document. A missing document or index is not an error.
func (r *tenantSearchRepository) Delete(ctx context.Context, ownerID, tenantID string) error {
	req := opensearchapi.DeleteRequest{
		Index:      r.config.GetTenantIndexName(ownerID),
		DocumentID: tenantID,
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("error deleting document: %s", res.String())
	}

	return nil
}

func (r *tenantSearchRepository) Search(ctx context.Context, ownerID, query string, page domain.Pagination) ([]domain.TenantDocument, error) {
	queryJSON, err := json.Marshal(buildTenantQuery(ownerID, query, page))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.config.GetTenantIndexName(ownerID)},
		Body:  strings.NewReader(string(queryJSON)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == http.StatusNotFound {
			return []domain.TenantDocument{}, nil
		}
		return nil, fmt.Errorf("search request failed: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Hits []struct {
				Source domain.TenantDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	docs := make([]domain.TenantDocument, 0, len(searchResult.Hits.Hits))
	for _, hit := range searchResult.Hits.Hits {
		docs = append(docs, hit.Source)
	}
	return docs, nil
}

// buildTenantQuery matches the query text against names and contact fields.
// The owner term is redundant with the per-owner index but keeps a shared
// index safe.
func buildTenantQuery(ownerID, query string, page domain.Pagination) map[string]any {
	page.Normalize()

	must := []map[string]any{
		{"term": map[string]any{"owner_id": ownerID}},
	}
	if q := strings.TrimSpace(query); q != "" {
		must = append(must, map[string]any{
			"multi_match": map[string]any{
				"query":     q,
				"fields":    []string{"full_name^3", "phone", "email", "id_number", "room_name", "hometown"},
				"fuzziness": "AUTO",
			},
		})
	}

	return map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": must,
			},
		},
		"from": page.Offset,
		"size": page.Limit,
		"sort": []any{"_score", map[string]any{"full_name.keyword": map[string]any{"order": "asc"}}},
	}
}

func tenantIndexMapping() string {
	return `{
		"mappings": {
			"properties": {
				"id": { "type": "keyword" },
				"owner_id": { "type": "keyword" },
				"room_id": { "type": "keyword" },
				"room_name": { "type": "text" },
				"full_name": {
					"type": "text",
					"fields": { "keyword": { "type": "keyword" } }
				},
				"phone": { "type": "keyword" },
				"email": { "type": "keyword" },
				"id_number": { "type": "keyword" },
				"hometown": { "type": "text" },
				"status": { "type": "keyword" }
			}
		},
		"settings": {
			"index": {
				"number_of_shards": 1,
				"number_of_replicas": 1,
				"refresh_interval": "1s"
			}
		}
	}`
}

func (r *tenantSearchRepository) CreateIndex(ctx context.Context, ownerID string) error {
	indexName := r.config.GetTenantIndexName(ownerID)

	exists := opensearchapi.IndicesExistsRequest{
		Index: []string{indexName},
	}
	res, err := exists.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	create := opensearchapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(tenantIndexMapping()),
	}

	res, err = create.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	// Two writers may race to create the index.
	if res.IsError() && !strings.Contains(res.String(), "resource_already_exists_exception") {
		return fmt.Errorf("error creating index: %s", res.String())
	}

	return nil
}
