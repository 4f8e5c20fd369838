package storage

import (
	"fmt"
	"strings"

	"github.com/aqline/storefront/internal/core/domain"
)

// listPredicates builds the WHERE clause for a catalog listing query.
//
// Dimensions combine with AND; values inside a dimension combine with
// OR. Category and manufacturer match exactly. Patterns and tags match
// as case-sensitive substrings of the raw comma-delimited tags column,
// with patterns carrying the PATTERN_ prefix. The search term matches
// case-insensitively against title, description, sku and manufacturer.
//
// The returned clause is empty when the query holds no predicates;
// otherwise it starts with "WHERE". Placeholders continue from argIdx.
func listPredicates(
	q domain.CatalogQuery, argIdx int,
) (clause string, args []any) {
	var conds []string

	next := func() string {
		argIdx++
		return fmt.Sprintf("$%d", argIdx-1)
	}

	if len(q.Categories) != 0 {
		var ph []string
		for _, v := range q.Categories {
			ph = append(ph, next())
			args = append(args, v)
		}
		conds = append(conds,
			fmt.Sprintf("category IN (%s)", strings.Join(ph, ", ")))
	}

	if len(q.Manufacturers) != 0 {
		var ph []string
		for _, v := range q.Manufacturers {
			ph = append(ph, next())
			args = append(args, v)
		}
		conds = append(conds,
			fmt.Sprintf("manufacturer IN (%s)", strings.Join(ph, ", ")))
	}

	if len(q.Patterns) != 0 {
		var ors []string
		for _, v := range q.Patterns {
			ors = append(ors, fmt.Sprintf("tags LIKE %s", next()))
			args = append(args, contains(domain.PatternPrefix+v))
		}
		conds = append(conds, group(ors))
	}

	if len(q.Tags) != 0 {
		var ors []string
		for _, v := range q.Tags {
			ors = append(ors, fmt.Sprintf("tags LIKE %s", next()))
			args = append(args, contains(v))
		}
		conds = append(conds, group(ors))
	}

	if q.Search != "" {
		term := next()
		conds = append(conds, fmt.Sprintf(
			"(title ILIKE %[1]s OR description ILIKE %[1]s"+
				" OR sku ILIKE %[1]s OR manufacturer ILIKE %[1]s)",
			term,
		))
		args = append(args, contains(q.Search))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func contains(v string) string {
	return "%" + escapeLike(v) + "%"
}

// escapeLike neutralizes LIKE metacharacters in user-supplied values.
func escapeLike(v string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(v)
}

func group(ors []string) string {
	if len(ors) == 1 {
		return ors[0]
	}
	return "(" + strings.Join(ors, " OR ") + ")"
}

func placeholdersCast(n, from int, cast string) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d%s", from+i, cast)
	}
	return strings.Join(ph, ", ")
}
