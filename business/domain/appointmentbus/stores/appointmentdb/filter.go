package appointmentdb

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jcpaschoal/vertical-suite/business/domain/appointmentbus"
)

func applyFilter(filter appointmentbus.QueryFilter) sq.Sqlizer {
	where := sq.And{}

	if filter.StaffName != nil {
		where = append(where, sq.Eq{"staff_name": *filter.StaffName})
	}

	if filter.Status != nil {
		where = append(where, sq.Eq{"status": filter.Status.String()})
	}

	if filter.From != nil {
		where = append(where, sq.GtOrEq{"starts_at": appointmentbus.Minute(*filter.From)})
	}

	if filter.To != nil {
		where = append(where, sq.Lt{"starts_at": appointmentbus.Minute(*filter.To)})
	}

	return where
}
