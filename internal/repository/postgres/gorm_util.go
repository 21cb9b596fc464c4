package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/internal/utils"
)

// getOwnerScope returns a scoped database instance with owner isolation
func getOwnerScope(db *gorm.DB, ctx context.Context, table string) (*gorm.DB, error) {
	ownerID, err := utils.GetOwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return db.WithContext(ctx).Where(table+".owner_id = ?", ownerID), nil
}

// translateError maps driver errors to repository errors.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repository.ErrDuplicate
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return repository.ErrReferenced
	}
	msg := err.Error()
	if strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "UNIQUE constraint failed") {
		return repository.ErrDuplicate
	}
	if strings.Contains(msg, "violates foreign key constraint") || strings.Contains(msg, "FOREIGN KEY constraint failed") {
		return repository.ErrReferenced
	}
	return err
}

// updateAll writes every column of value, zero values included, and skips associations.
// The scope must already carry the owner condition where one applies.
func updateAll(scope *gorm.DB, value any) error {
	res := scope.Model(value).Select("*").Omit(clause.Associations, "created_at").Updates(value)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// deleteByID deletes one row of model matching id within scope.
func deleteByID(scope *gorm.DB, model any, id string) error {
	res := scope.Delete(model, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// paginate normalises the page and applies limit and offset.
func paginate(db *gorm.DB, page domain.Pagination) *gorm.DB {
	page.Normalize()
	return db.Limit(page.Limit).Offset(page.Offset)
}

// countAndFind counts the rows matched by query, then loads one page of them into dest.
func countAndFind(query *gorm.DB, page domain.Pagination, order string, dest any, preloads ...string) (int64, error) {
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}

	find := paginate(query, page).Order(order)
	for _, p := range preloads {
		find = find.Preload(p)
	}
	if err := find.Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// sweepLimit bounds the batch size of background scans.
func sweepLimit(limit int) int {
	if limit <= 0 || limit > 1000 {
		return 100
	}
	return limit
}

func forUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// likePattern escapes a user search term for ILIKE/LIKE.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + strings.ToLower(r.Replace(term)) + "%"
}
