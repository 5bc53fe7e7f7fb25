// Package query builds SQL filter clauses from explicit filter
// specifications. Filters are plain field/operator/value triples combined
// with AND, so the filtering contract is testable without a database.
package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/policyradar/policyradar-engine/pkg/apperrors"
)

// Pagination bounds enforced at the API boundary. Out-of-range values are
// rejected, never clamped.
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Op is a filter operator.
type Op string

const (
	OpEq       Op = "eq"       // field = value
	OpGte      Op = "gte"      // field >= value (inclusive lower bound)
	OpLte      Op = "lte"      // field <= value (inclusive upper bound)
	OpLt       Op = "lt"       // field < value
	OpContains Op = "contains" // JSONB array containment: field @> value
)

// Filter is one field/operator/value triple.
type Filter struct {
	Field string
	Op    Op
	Value any
}

// Page is an offset/limit window over a filtered result set.
type Page struct {
	Skip  int
	Limit int
}

// DefaultPage returns the window used when the caller supplies no
// pagination parameters.
func DefaultPage() Page {
	return Page{Skip: 0, Limit: DefaultLimit}
}

// Validate rejects windows outside the declared bounds:
// skip >= 0 and 1 <= limit <= maxLimit. Pass 0 for the package default.
func (p Page) Validate(maxLimit int) error {
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	if p.Skip < 0 {
		return fmt.Errorf("%w: skip must not be negative, got %d", apperrors.ErrValidation, p.Skip)
	}
	if p.Limit < 1 || p.Limit > maxLimit {
		return fmt.Errorf("%w: limit must be within 1..%d, got %d", apperrors.ErrValidation, maxLimit, p.Limit)
	}
	return nil
}

// Spec collects the conjunctive filters, an optional OR-combined substring
// match, ordering, and the page window for one collection query.
type Spec struct {
	Filters []Filter

	// SearchFields/SearchTerm produce one OR-combined group of
	// case-insensitive substring matches across the named columns.
	SearchFields []string
	SearchTerm   string

	// OrGroups are raw disjunctive predicates rendered verbatim, each with
	// its own argument (used for the high-risk listing).
	OrGroups []OrGroup

	OrderBy string
	Desc    bool

	Page Page
}

// OrGroup is a set of predicates joined with OR. Each predicate uses a
// single positional argument placeholder written as {}.
type OrGroup struct {
	Predicates []Predicate
}

// Predicate is one comparison in an OrGroup.
type Predicate struct {
	Field string
	Op    Op
	Value any
}

// Eq appends an equality filter. A nil value imposes no constraint.
func (s *Spec) Eq(field string, value any) *Spec {
	s.Filters = append(s.Filters, Filter{Field: field, Op: OpEq, Value: value})
	return s
}

// Gte appends an inclusive lower-bound filter.
func (s *Spec) Gte(field string, value any) *Spec {
	s.Filters = append(s.Filters, Filter{Field: field, Op: OpGte, Value: value})
	return s
}

// Lte appends an inclusive upper-bound filter.
func (s *Spec) Lte(field string, value any) *Spec {
	s.Filters = append(s.Filters, Filter{Field: field, Op: OpLte, Value: value})
	return s
}

// ContainsTag appends a JSONB array-membership filter: the column must
// contain tag as an element.
func (s *Spec) ContainsTag(field, tag string) *Spec {
	encoded, _ := json.Marshal([]string{tag})
	s.Filters = append(s.Filters, Filter{Field: field, Op: OpContains, Value: string(encoded)})
	return s
}

// Search sets the OR-combined case-insensitive substring match.
func (s *Spec) Search(term string, fields ...string) *Spec {
	s.SearchTerm = term
	s.SearchFields = fields
	return s
}

// Where renders the WHERE clause and its positional arguments. Placeholders
// start at $firstArg. Returns an empty clause when no filters are set.
func (s *Spec) Where(firstArg int) (string, []any) {
	if firstArg < 1 {
		firstArg = 1
	}

	var conds []string
	var args []any
	next := firstArg

	for _, f := range s.Filters {
		switch f.Op {
		case OpEq:
			conds = append(conds, fmt.Sprintf("%s = $%d", f.Field, next))
		case OpGte:
			conds = append(conds, fmt.Sprintf("%s >= $%d", f.Field, next))
		case OpLte:
			conds = append(conds, fmt.Sprintf("%s <= $%d", f.Field, next))
		case OpLt:
			conds = append(conds, fmt.Sprintf("%s < $%d", f.Field, next))
		case OpContains:
			conds = append(conds, fmt.Sprintf("%s @> $%d", f.Field, next))
		default:
			continue
		}
		args = append(args, f.Value)
		next++
	}

	if s.SearchTerm != "" && len(s.SearchFields) > 0 {
		var matches []string
		for _, field := range s.SearchFields {
			matches = append(matches, fmt.Sprintf("%s ILIKE $%d", field, next))
		}
		conds = append(conds, "("+strings.Join(matches, " OR ")+")")
		args = append(args, "%"+s.SearchTerm+"%")
		next++
	}

	for _, group := range s.OrGroups {
		var preds []string
		for _, p := range group.Predicates {
			switch p.Op {
			case OpEq:
				preds = append(preds, fmt.Sprintf("%s = $%d", p.Field, next))
			case OpGte:
				preds = append(preds, fmt.Sprintf("%s >= $%d", p.Field, next))
			case OpLte:
				preds = append(preds, fmt.Sprintf("%s <= $%d", p.Field, next))
			case OpLt:
				preds = append(preds, fmt.Sprintf("%s < $%d", p.Field, next))
			default:
				continue
			}
			args = append(args, p.Value)
			next++
		}
		if len(preds) > 0 {
			conds = append(conds, "("+strings.Join(preds, " OR ")+")")
		}
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// OrderClause renders the ORDER BY clause, or an empty string when no
// ordering is specified (general listings leave order unspecified).
func (s *Spec) OrderClause() string {
	if s.OrderBy == "" {
		return ""
	}
	dir := "ASC"
	if s.Desc {
		dir = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s", s.OrderBy, dir)
}
