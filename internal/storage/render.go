package storage

import (
	"fmt"
	"strings"

	"github.com/florafind/florasearch/internal/predicate"
)

// RenderSet turns a predicate set into a parameterized WHERE clause.
// Groups are combined with AND: each tier further constrains the
// candidate set, with alternatives already expressed as Or nodes inside
// a group. An empty set matches the whole catalog so the ranker still
// has candidates to order for vague queries.
func RenderSet(set *predicate.Set) (string, []any) {
	if set == nil || set.Empty() {
		return "1=1", nil
	}

	var clauses []string
	var args []any
	for _, g := range set.Groups {
		clause, groupArgs := renderExpr(g.Expr)
		if clause == "" {
			continue
		}
		clauses = append(clauses, clause)
		args = append(args, groupArgs...)
	}
	if len(clauses) == 0 {
		return "1=1", nil
	}
	return strings.Join(clauses, " AND "), args
}

func renderExpr(e predicate.Expr) (string, []any) {
	switch v := e.(type) {
	case predicate.Cond:
		return renderCond(v)
	case *predicate.Cond:
		return renderCond(*v)
	case predicate.And:
		return renderJoin(v, " AND ")
	case predicate.Or:
		return renderJoin(v, " OR ")
	default:
		return "", nil
	}
}

func renderJoin(exprs []predicate.Expr, sep string) (string, []any) {
	var parts []string
	var args []any
	for _, e := range exprs {
		clause, a := renderExpr(e)
		if clause == "" {
			continue
		}
		parts = append(parts, clause)
		args = append(args, a...)
	}
	if len(parts) == 0 {
		return "", nil
	}
	if len(parts) == 1 {
		return parts[0], args
	}
	return "(" + strings.Join(parts, sep) + ")", args
}

func renderCond(c predicate.Cond) (string, []any) {
	switch c.Op {
	case predicate.OpEq:
		return fmt.Sprintf("LOWER(%s) = ?", c.Field), []any{strings.ToLower(fmt.Sprint(c.Value))}
	case predicate.OpContains:
		return fmt.Sprintf("LOWER(%s) LIKE ?", c.Field), []any{"%" + strings.ToLower(fmt.Sprint(c.Value)) + "%"}
	case predicate.OpNotEmpty:
		return fmt.Sprintf("(%s IS NOT NULL AND %s != '')", c.Field, c.Field), nil
	case predicate.OpGT:
		return fmt.Sprintf("%s > ?", c.Field), []any{c.Value}
	default:
		return "", nil
	}
}
