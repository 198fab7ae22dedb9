package productdb

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jcpaschoal/vertical-suite/business/domain/productbus"
)

func applyFilter(filter productbus.QueryFilter) sq.Sqlizer {
	where := sq.And{}

	if filter.SKU != nil {
		where = append(where, sq.Eq{"sku": strings.ToUpper(*filter.SKU)})
	}

	if filter.Name != nil {
		where = append(where, sq.Like{"LOWER(name)": "%" + strings.ToLower(*filter.Name) + "%"})
	}

	if filter.Active != nil {
		where = append(where, sq.Eq{"active": *filter.Active})
	}

	if filter.MaxStock != nil {
		where = append(where, sq.LtOrEq{"stock": *filter.MaxStock})
	}

	if filter.MinPrice != nil {
		where = append(where, sq.Expr("CAST(price AS NUMERIC) >= ?", filter.MinPrice.String()))
	}

	return where
}
