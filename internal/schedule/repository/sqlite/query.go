package sqlite

import (
	"strings"

	repo "care-schedule/internal/schedule/repository"
)

// buildListQuery builds the WHERE + ORDER clause for list queries.
func (r *implRepository) buildListQuery(opt repo.ListOptions) (string, []any) {
	var parts []string
	var args []any

	if opt.Date != "" {
		if opt.IncludeUndated {
			parts = append(parts, "WHERE (date = ? OR date = '')")
		} else {
			parts = append(parts, "WHERE date = ?")
		}
		args = append(args, opt.Date)
	}

	parts = append(parts, "ORDER BY seq ASC")
	return strings.Join(parts, " "), args
}
