package orderbus

import "time"

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	TableNumber    *int
	Status         *Status
	StartCreatedAt *time.Time
	EndCreatedAt   *time.Time
}
