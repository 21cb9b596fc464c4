package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/internal/service/queue"
)

var ErrEmptyTenantMessage = errors.New("index message has no tenant document")

// IndexHandler applies tenant index messages to the search repository.
type IndexHandler struct {
	search repository.TenantSearchRepository
}

func NewIndexHandler(search repository.TenantSearchRepository) *IndexHandler {
	return &IndexHandler{search: search}
}

func (h *IndexHandler) Handle(ctx context.Context, msg queue.Message) error {
	switch msg.Type {
	case queue.MessageTypeIndexTenant:
		if msg.Tenant == nil {
			return ErrEmptyTenantMessage
		}
		return h.search.Index(ctx, msg.Tenant)

	case queue.MessageTypeDeleteTenant:
		return h.search.Delete(ctx, msg.OwnerID, msg.TenantID)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
