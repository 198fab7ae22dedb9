package reservationdb

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jcpaschoal/vertical-suite/business/domain/reservationbus"
)

func applyFilter(filter reservationbus.QueryFilter) sq.Sqlizer {
	where := sq.And{}

	if filter.RoomNumber != nil {
		where = append(where, sq.Eq{"room_number": *filter.RoomNumber})
	}

	if filter.Status != nil {
		where = append(where, sq.Eq{"status": filter.Status.String()})
	}

	if filter.GuestName != nil {
		where = append(where, sq.Like{"LOWER(guest_name)": "%" + strings.ToLower(*filter.GuestName) + "%"})
	}

	if filter.From != nil {
		where = append(where, sq.Gt{"check_out": reservationbus.Day(*filter.From)})
	}

	if filter.To != nil {
		where = append(where, sq.Lt{"check_in": reservationbus.Day(*filter.To)})
	}

	return where
}
