package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "shiftbook/internal/errors"
)

// Order is a validated sort directive over an allow-listed column.
type Order struct {
	Column     string
	Descending bool
}

// OrderFor builds an Order for a column, rejecting any order_type other than
// asc or desc. Callers are expected to resolve the column through an
// allow-list before reaching here.
func OrderFor(column, orderType string) (*Order, error) {
	switch orderType {
	case "asc":
		return &Order{Column: column}, nil
	case "desc":
		return &Order{Column: column, Descending: true}, nil
	default:
		return nil, &apperrors.InvalidOrderTypeError{OrderType: orderType}
	}
}

// Clause renders the directive as an ORDER BY expression.
func (o *Order) Clause() string {
	if o.Descending {
		return o.Column + " DESC"
	}
	return o.Column + " ASC"
}

// Sorted applies the directive as a scope. A nil Order leaves the natural
// store order in place.
func Sorted(order *Order) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if order == nil {
			return tx
		}
		return tx.Order(order.Clause())
	}
}

// splitSearch interprets a free-text name search. A string containing a space
// is treated as "first last" (tokens beyond the second are ignored);
// otherwise the whole string matches either name field.
func splitSearch(search string) (first, last string, twoWords bool) {
	if strings.Contains(search, " ") {
		tokens := strings.Split(search, " ")
		return tokens[0], tokens[1], true
	}
	return search, "", false
}

// NameSearch filters on the person name columns of the given table using
// case-insensitive substring containment. Wildcard metacharacters in the
// search string are passed through to the store unescaped.
func NameSearch(search, table string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		first, last, twoWords := splitSearch(search)
		if twoWords {
			return tx.Where(
				"LOWER("+table+".first_name) LIKE LOWER(?) AND LOWER("+table+".last_name) LIKE LOWER(?)",
				"%"+first+"%", "%"+last+"%",
			)
		}
		pattern := "%" + search + "%"
		return tx.Where(
			"LOWER("+table+".first_name) LIKE LOWER(?) OR LOWER("+table+".last_name) LIKE LOWER(?)",
			pattern, pattern,
		)
	}
}

// startOfDay returns the timestamp at 00:00:00.000000 on t's calendar date.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay returns the timestamp at 23:59:59.999999 on t's calendar date.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999000, t.Location())
}

// ShiftDateRange keeps shifts starting within the inclusive calendar-date
// bounds. Either bound may be nil.
func ShiftDateRange(startDate, endDate *time.Time) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if startDate != nil {
			tx = tx.Where("shifts.start_time >= ?", startOfDay(*startDate))
		}
		if endDate != nil {
			tx = tx.Where("shifts.start_time <= ?", endOfDay(*endDate))
		}
		return tx
	}
}
