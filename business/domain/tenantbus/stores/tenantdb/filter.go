package tenantdb

import (
	"bytes"
	"strings"

	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
)

func applyFilter(filter tenantbus.QueryFilter, data map[string]any, buf *bytes.Buffer) {
	var wc []string

	if filter.Name != nil {
		data["name"] = "%" + strings.ToLower(*filter.Name) + "%"
		wc = append(wc, "LOWER(name) LIKE :name")
	}

	if filter.Vertical != nil {
		data["vertical"] = filter.Vertical.String()
		wc = append(wc, "vertical = :vertical")
	}

	if filter.Enabled != nil {
		data["enabled"] = *filter.Enabled
		wc = append(wc, "enabled = :enabled")
	}

	if len(wc) > 0 {
		buf.WriteString(" WHERE ")
		buf.WriteString(strings.Join(wc, " AND "))
	}
}
