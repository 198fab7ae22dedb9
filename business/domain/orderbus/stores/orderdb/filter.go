package orderdb

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jcpaschoal/vertical-suite/business/domain/orderbus"
)

func applyFilter(filter orderbus.QueryFilter) sq.Sqlizer {
	where := sq.And{}

	if filter.TableNumber != nil {
		where = append(where, sq.Eq{"table_number": *filter.TableNumber})
	}

	if filter.Status != nil {
		where = append(where, sq.Eq{"status": filter.Status.String()})
	}

	if filter.StartCreatedAt != nil {
		where = append(where, sq.GtOrEq{"created_at": filter.StartCreatedAt.UTC()})
	}

	if filter.EndCreatedAt != nil {
		where = append(where, sq.LtOrEq{"created_at": filter.EndCreatedAt.UTC()})
	}

	return where
}
