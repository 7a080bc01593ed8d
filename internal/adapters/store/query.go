package store

import (
	"math"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"github.com/jsamuelsen11/recipebox/internal/domain"
)

// unbounded stands in for "no limit", since SQLite rejects OFFSET without LIMIT.
const unbounded = math.MaxInt32

// likeEscaper escapes LIKE metacharacters using '!' as the escape character.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// applyNameFilter narrows q to rows whose column contains name, ignoring case.
func applyNameFilter(q *bun.SelectQuery, column, name string) *bun.SelectQuery {
	if name == "" {
		return q
	}
	pattern := "%" + likeEscaper.Replace(name) + "%"
	return q.Where("LOWER(?) LIKE LOWER(?) ESCAPE '!'", bun.Ident(column), pattern)
}

// applyPage applies offset then limit. Callers handle page.Empty() themselves.
func applyPage(q *bun.SelectQuery, page domain.Page) *bun.SelectQuery {
	switch {
	case page.Limit != nil:
		q = q.Limit(*page.Limit)
	case page.Offset != nil:
		q = q.Limit(unbounded)
	}
	if page.Offset != nil {
		q = q.Offset(*page.Offset)
	}
	return q
}

// timestamp is the current UTC time at the microsecond precision both
// PostgreSQL and the SQLite text encoding preserve.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
