package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCreated = "created_at"
	orderByUpdated = "updated_at"
	orderByTitle   = "title"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByCreated: "created_at DESC, id DESC",
	orderByUpdated: "updated_at DESC, id DESC",
	orderByTitle:   "lower(title) ASC, id ASC",
}

const defaultOrderBy = "created_at DESC, id DESC"

const baseHallsSelect = `SELECT id, title, owner, created_at, updated_at FROM halls`

const countHallsSelect = "SELECT COUNT(*) FROM halls"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a hall query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters.
func (q *HallQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Owner != nil {
		conditions = append(conditions, fmt.Sprintf("owner = $%d", paramIdx))
		args = append(args, *q.Owner)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if col, ok := validOrderBy[q.OrderBy]; ok {
		orderClause = col
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseHallsSelect, whereClause, orderClause, limit, offset,
	)
	countSQL = countHallsSelect + whereClause

	return dataSQL, countSQL, args
}
