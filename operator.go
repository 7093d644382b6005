// Package mongopipe provides a fluent API for building MongoDB aggregation
// pipelines: a chainable Operator wrapper over an expression builder, a
// stage-level Pipeline builder and a declarative pipeline document format
// with a caching compiler.
package mongopipe

import "go.mongodb.org/mongo-driver/v2/bson"

//go:generate go run ./internal/opgen

// Expression is implemented by values that assemble into an aggregation
// expression document. Operator and Expr both satisfy it, so either can be
// nested inside the other or passed to Pipeline stages.
type Expression interface {
	Document() (bson.M, error)
}

// Operator wraps a Builder with a chainable surface. Every operator method
// hands its arguments to the identically named Builder method untouched and
// returns the same Operator, so calls read in pipeline order:
//
//	op := mongopipe.NewOperator(mongopipe.NewExpr())
//	op.Field("grade").
//		Switch().
//		Case(mongopipe.NewOperator(mongopipe.NewExpr()).Gte("$score", 90)).
//		Then("A").
//		Default("F")
//
// Operator adds no behavior of its own; the builder decides how each
// operator is shaped and reports errors when its document is read back.
type Operator struct {
	b Builder
}

// NewOperator returns an Operator chaining calls onto the given builder.
func NewOperator(b Builder) *Operator {
	return &Operator{b: b}
}

// Field switches the builder's field context, so the operators that follow
// are stored under the named key.
func (o *Operator) Field(name string) *Operator {
	o.b.Field(name)
	return o
}

// Call applies an operator the table does not cover by its wire name, for
// example Call("$toHashedIndexKey", "$name"). Arguments pass through to the
// builder's generic Operator method unchanged.
func (o *Operator) Call(name string, args ...any) *Operator {
	o.b.Operator(name, args...)
	return o
}

// Document returns the expression document assembled so far, along with the
// first error the builder recorded.
func (o *Operator) Document() (bson.M, error) {
	return o.b.Document()
}
