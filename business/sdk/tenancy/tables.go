package tenancy

// Column is the tenant discriminator carried by every scoped table.
const Column = "tenant_id"

// The closed set of tables that carry a tenant. Anything else passes
// through the DB unmodified.
var scoped = map[string]struct{}{
	"users":            {},
	"reservations":     {},
	"ingredients":      {},
	"inventory_ledger": {},
	"orders":           {},
	"order_items":      {},
	"appointments":     {},
	"products":         {},
}

// IsScoped reports whether table is on the allow-list.
func IsScoped(table string) bool {
	_, exists := scoped[table]
	return exists
}

// Tables returns the scoped table names.
func Tables() []string {
	tables := make([]string, 0, len(scoped))
	for t := range scoped {
		tables = append(tables, t)
	}
	return tables
}
