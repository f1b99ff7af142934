package repositories

import (
	"errors"

	apperrors "classapp-admin/internal/errors"
	"classapp-admin/internal/query"

	"gorm.io/gorm"
)

// ===========================================================================
// Repository helpers shared by the GORM implementations
// ===========================================================================

// orderByID stable listing order of every entity
const orderByID = "id ASC"

// likeEscaped predicate suffix matching query.LikePattern
const likeEscaped = ` LIKE ? ESCAPE '\'`

// paginate applies the page window to a query
func paginate(p query.Page) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.Limit)
	}
}

// translateError maps GORM errors to application errors so callers see
// the same sentinels for every backend
func translateError(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NotFound(entity)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.Duplicate(entity)
	default:
		return err
	}
}

// countRow one row of a GROUP BY count
type countRow struct {
	RefID uint
	Total int64
}

func countsToMap(rows []countRow) map[uint]int64 {
	out := make(map[uint]int64, len(rows))
	for _, r := range rows {
		out[r.RefID] = r.Total
	}
	return out
}
