package gorm

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/poolquote/poolquote/internal/types"
)

// applyQueryFilter applies pagination and ordering to a query. defaultSort is
// used when the filter carries no explicit sort column.
func applyQueryFilter(query *gorm.DB, f *types.QueryFilter, defaultSort string) *gorm.DB {
	if f == nil {
		return query.Order(defaultSort)
	}

	sort := defaultSort
	if f.Sort != nil && *f.Sort != "" {
		sort = *f.Sort
	}
	order := f.GetOrder()
	if order != "" {
		sort = fmt.Sprintf("%s %s", sort, order)
	}
	query = query.Order(sort)

	if limit := f.GetLimit(); limit > 0 {
		query = query.Limit(limit)
	}
	if offset := f.GetOffset(); offset > 0 {
		query = query.Offset(offset)
	}
	return query
}
