package mysql

import (
	"fmt"
	"strings"
)

// updateBuilder accumulates SET clauses and their bind values in lockstep, so
// the placeholder positions always line up with the argument list.
type updateBuilder struct {
	clauses []string
	args    []any
}

// set appends one column assignment with its bind value.
func (b *updateBuilder) set(column string, value any) {
	b.clauses = append(b.clauses, column+" = ?")
	b.args = append(b.args, value)
}

// empty reports whether no assignment was added.
func (b *updateBuilder) empty() bool {
	return len(b.clauses) == 0
}

// query renders the UPDATE statement. The key value is bound last, after all
// assignment values.
func (b *updateBuilder) query(table, keyColumn string, keyValue any) (string, []any) {
	stmt := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
		table, strings.Join(b.clauses, ", "), keyColumn)
	return stmt, append(b.args, keyValue)
}
