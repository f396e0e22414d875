package dataprocessing

import (
	"strings"

	"salescli/pkg/contracts/domain"
)

// roleKeywords are the case-insensitive substrings used to discover
// each semantic role among the source columns. "fulfil" catches both
// the British and American spellings; region columns in Amazon exports
// carry the shipping state.
var roleKeywords = []struct {
	role    string
	keyword string
}{
	{"amount", "amount"},
	{"date", "date"},
	{"category", "category"},
	{"fulfillment", "fulfil"},
	{"region", "state"},
}

// ResolveColumns maps the semantic roles of the analysis to actual
// column names. For each role the first column (in the table's original
// order) whose trimmed name contains the role keyword wins. A role with
// no matching column resolves to empty, which is not an error: the
// Cleaner decides which roles it cannot do without.
func ResolveColumns(columns []string) domain.ColumnRoles {
	var roles domain.ColumnRoles

	for _, rk := range roleKeywords {
		for _, col := range columns {
			if strings.Contains(strings.ToLower(strings.TrimSpace(col)), rk.keyword) {
				switch rk.role {
				case "amount":
					roles.Amount = col
				case "date":
					roles.Date = col
				case "category":
					roles.Category = col
				case "fulfillment":
					roles.Fulfillment = col
				case "region":
					roles.Region = col
				}
				break
			}
		}
	}

	return roles
}
