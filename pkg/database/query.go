package database

import "strings"

// Conditions accumulates AND-ed WHERE clauses written with "?" placeholders.
// Callers pass the final query through sqlx Rebind for the driver's bindvar.
type Conditions struct {
	clauses []string
	args    []any
}

// And appends a clause and its arguments.
func (c *Conditions) And(clause string, args ...any) *Conditions {
	c.clauses = append(c.clauses, clause)
	c.args = append(c.args, args...)
	return c
}

// SQL renders " WHERE a AND b", or "" when empty.
func (c *Conditions) SQL() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

func (c *Conditions) Args() []any {
	return c.args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns s into a LIKE/ILIKE pattern matching any value that
// contains s literally.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
