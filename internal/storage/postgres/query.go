package postgres

import (
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"

	"trendwatch/internal/domain"
)

const uniqueViolation = "23505"

// where accumulates AND-ed conditions with numbered placeholders.
type where struct {
	conds []string
	args  []interface{}
}

func (w *where) add(cond string, arg interface{}) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.ReplaceAll(cond, "?", "$"+itoa(len(w.args))))
}

func (w *where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// next returns the placeholder for the argument after the current ones.
func (w *where) next(offset int) string {
	return "$" + itoa(len(w.args)+offset)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func rowsAffected(n int64) error {
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func itoa(i int) string {
	if i < 10 {
		return string(rune('0' + i))
	}
	return itoa(i/10) + string(rune('0'+i%10))
}

func dateArg(t time.Time) string {
	return t.UTC().Format(domain.DateLayout)
}
