package userdb

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jcpaschoal/vertical-suite/business/domain/userbus"
)

func applyFilter(filter userbus.QueryFilter) sq.Sqlizer {
	var where sq.And

	if filter.ID != nil {
		where = append(where, sq.Eq{"user_id": filter.ID.String()})
	}

	if filter.Name != nil {
		where = append(where, sq.Like{"LOWER(name)": "%" + strings.ToLower(*filter.Name) + "%"})
	}

	if filter.Email != nil {
		where = append(where, sq.Eq{"email": filter.Email.Address})
	}

	if filter.Role != nil {
		where = append(where, sq.Eq{"role": filter.Role.String()})
	}

	if filter.StartCreatedAt != nil {
		where = append(where, sq.GtOrEq{"created_at": filter.StartCreatedAt.UTC()})
	}

	if filter.EndCreatedAt != nil {
		where = append(where, sq.LtOrEq{"created_at": filter.EndCreatedAt.UTC()})
	}

	return where
}
