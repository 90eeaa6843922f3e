package service

import "shiftbook/internal/repository"

// Sortable columns per listing. A sort_by outside the allow-list leaves the
// natural store order and skips order_type validation entirely.
var (
	personSortColumns = map[string]string{
		"first_name": "first_name",
		"last_name":  "last_name",
	}
	shiftSortColumns = map[string]string{
		"first_name": "persons.first_name",
		"start_time": "shifts.start_time",
	}
	personShiftSortColumns = map[string]string{
		"start_time": "shifts.start_time",
	}
)

// orderFrom resolves sort_by through the allow-list and validates order_type.
// Unknown sort_by yields no ordering; a known sort_by with an order_type
// other than asc/desc is a caller error.
func orderFrom(columns map[string]string, sortBy, orderType string) (*repository.Order, error) {
	column, ok := columns[sortBy]
	if !ok {
		return nil, nil
	}
	return repository.OrderFor(column, orderType)
}
