package mongopipe

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Expr is the canonical Builder. It assembles a bson.M expression document,
// shaping each operator the way the MongoDB reference writes it: a bare
// operand for single-argument operators, an argument array for the rest and
// a named-key document for operators such as $cond and $dateToString.
//
// Operator methods are void so the Operator wrapper can chain them; misuse
// is recorded and the first error surfaces when Document is called, the way
// sql.Rows defers its errors to Err.
type Expr struct {
	doc   bson.M
	field string

	// open $switch document and the branch awaiting its Then
	sw     bson.M
	branch bson.M

	err error
}

// NewExpr returns an empty expression builder.
func NewExpr() *Expr {
	return &Expr{doc: bson.M{}}
}

// Field sets the field context. Operators applied after this call are stored
// under the named key, so one builder can assemble multi-field documents for
// $group, $project or $addFields:
//
//	e.Field("total").Sum("$qty")
//	e.Field("avg").Avg("$qty")
func (e *Expr) Field(name string) {
	e.field = name
}

// Operator applies an operator by its wire name. One argument becomes the
// operand as is, more become an argument array and none an empty document,
// matching how fixed, variadic and niladic operators are written.
func (e *Expr) Operator(name string, args ...any) {
	switch len(args) {
	case 0:
		e.applyRaw(name, bson.M{})
	case 1:
		e.apply(name, args[0])
	default:
		e.applyRaw(name, e.normalizeArgs(args))
	}
}

// Document returns the assembled expression document and the first error
// recorded while building it.
func (e *Expr) Document() (bson.M, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.branch != nil {
		return nil, fmt.Errorf("mongopipe: switch case is missing its then")
	}
	return e.doc, nil
}

// fail records the first error; later calls keep chaining as no-ops.
func (e *Expr) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// apply stores {name: operand} under the field context, or merges it into
// the document root when no field is set.
func (e *Expr) apply(name string, operand any) {
	e.applyRaw(name, e.normalize(operand))
}

// applyRaw is apply without normalizing the operand.
func (e *Expr) applyRaw(name string, operand any) {
	if e.field != "" {
		e.doc[e.field] = bson.M{name: operand}
	} else {
		e.doc[name] = operand
	}
}

// applyArray stores the operands as the operator's argument array.
func (e *Expr) applyArray(name string, args ...any) {
	e.applyRaw(name, e.normalizeArgs(args))
}

// applyAccum uses the bare operand form for a single argument and the array
// form otherwise, the way $sum and $avg are written in group and expression
// position.
func (e *Expr) applyAccum(name string, args []any) {
	if len(args) == 1 {
		e.apply(name, args[0])
		return
	}
	e.applyRaw(name, e.normalizeArgs(args))
}

// applyDoc stores a document-form operator, folding optional trailing
// arguments into their named keys in order.
func (e *Expr) applyDoc(name string, doc bson.M, keys []string, opts []any) {
	if len(opts) > len(keys) {
		e.fail(fmt.Errorf("mongopipe: %s takes at most %d optional arguments", name, len(keys)))
		return
	}
	for i, v := range opts {
		doc[keys[i]] = v
	}
	for k, v := range doc {
		doc[k] = e.normalize(v)
	}
	e.applyRaw(name, doc)
}

func (e *Expr) normalize(v any) any {
	out, err := normalizeValue(v)
	if err != nil {
		e.fail(err)
	}
	return out
}

func (e *Expr) normalizeArgs(args []any) bson.A {
	out := make(bson.A, len(args))
	for i, a := range args {
		out[i] = e.normalize(a)
	}
	return out
}

// normalizeValue resolves nested builders to their documents and converts
// native containers to bson types, recursing through maps and slices.
func normalizeValue(v any) (any, error) {
	switch val := v.(type) {
	case Expression:
		return val.Document()
	case bson.M:
		return normalizeMap(val)
	case map[string]any:
		return normalizeMap(val)
	case bson.D:
		out := make(bson.D, len(val))
		for i, elem := range val {
			ev, err := normalizeValue(elem.Value)
			if err != nil {
				return nil, err
			}
			out[i] = bson.E{Key: elem.Key, Value: ev}
		}
		return out, nil
	case bson.A:
		return normalizeSlice(val)
	case []any:
		return normalizeSlice(val)
	default:
		return v, nil
	}
}

func normalizeMap(m map[string]any) (bson.M, error) {
	out := make(bson.M, len(m))
	for k, v := range m {
		nv, err := normalizeValue(v)
		if err != nil {
			return nil, err
		}
		out[k] = nv
	}
	return out, nil
}

func normalizeSlice(s []any) (bson.A, error) {
	out := make(bson.A, len(s))
	for i, v := range s {
		nv, err := normalizeValue(v)
		if err != nil {
			return nil, err
		}
		out[i] = nv
	}
	return out, nil
}
