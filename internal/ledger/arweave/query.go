package arweave

import (
	"errors"

	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/model"
)

const (
	opEquals = "equals"
	opOr     = "or"
)

// Expr is a node of the gateway query language. Expr1 and Expr2 hold either a
// string operand or a nested Expr.
type Expr struct {
	Op    string `json:"op"`
	Expr1 any    `json:"expr1"`
	Expr2 any    `json:"expr2"`
}

// Equals matches transactions carrying tag name=value.
func Equals(name, value string) Expr {
	return Expr{Op: opEquals, Expr1: name, Expr2: value}
}

// Or matches transactions matching either side.
func Or(left, right Expr) Expr {
	return Expr{Op: opOr, Expr1: left, Expr2: right}
}

// TagQuery builds a query matching any of values for tag name. The gateway only
// knows binary equals/or, so values fold right to left: each later value becomes
// the left operand of an or whose right operand is the tree built so far.
func TagQuery(name string, values []string) (Expr, error) {
	if len(values) == 0 {
		return Expr{}, errors.New("at least one tag value is required")
	}

	tree := Equals(name, values[0])
	for _, v := range values[1:] {
		tree = Or(Equals(name, v), tree)
	}
	return tree, nil
}

// AppNamesQuery builds a query matching transactions of any of the given applications.
func AppNamesQuery(names []string) (Expr, error) {
	return TagQuery(model.AppNameTag, names)
}
