package ingredientdb

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jcpaschoal/vertical-suite/business/domain/ingredientbus"
)

func applyFilter(filter ingredientbus.QueryFilter) sq.Sqlizer {
	where := sq.And{}

	if filter.Name != nil {
		where = append(where, sq.Like{"LOWER(name)": "%" + strings.ToLower(*filter.Name) + "%"})
	}

	if filter.Unit != nil {
		where = append(where, sq.Eq{"unit": filter.Unit.String()})
	}

	return where
}
