// Opgen generates the fluent operator surface from the optable package:
// the Builder interface, the Operator forwarding methods and the recorder
// used by the forwarding tests. Run it from the repository root, where the
// go:generate directive in operator.go does.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"

	"github.com/dosco/mongopipe/internal/optable"
)

type genFile struct {
	name string
	tpl  string
	out  string
}

var files = []genFile{
	{name: "builder", tpl: builderTpl, out: "builder_gen.go"},
	{name: "operator", tpl: operatorTpl, out: "operator_gen.go"},
	{name: "recorder", tpl: recorderTpl, out: "recorder_gen_test.go"},
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	funcs := template.FuncMap{
		"params": paramList,
		"args":   argList,
		"record": recordArgs,
	}

	for _, f := range files {
		t, err := template.New(f.name).Funcs(funcs).Parse(f.tpl)
		if err != nil {
			return fmt.Errorf("opgen: parse %s: %w", f.name, err)
		}

		var buf bytes.Buffer
		if err := t.Execute(&buf, optable.Ops); err != nil {
			return fmt.Errorf("opgen: execute %s: %w", f.name, err)
		}

		src, err := format.Source(buf.Bytes())
		if err != nil {
			fmt.Println(buf.String())
			return fmt.Errorf("opgen: format %s: %w", f.name, err)
		}

		if err := os.WriteFile(f.out, src, 0644); err != nil {
			return fmt.Errorf("opgen: write %s: %w", f.out, err)
		}
	}
	return nil
}

// paramList renders an op's parameter list: fixed parameters share one any
// type, a variadic op turns its last parameter into a ...any tail.
func paramList(op optable.Op) string {
	if len(op.Params) == 0 {
		return ""
	}
	if op.Variadic {
		fixed := op.Params[:len(op.Params)-1]
		tail := op.Params[len(op.Params)-1] + " ...any"
		if len(fixed) == 0 {
			return tail
		}
		return strings.Join(fixed, ", ") + " any, " + tail
	}
	return strings.Join(op.Params, ", ") + " any"
}

// argList renders the matching call-through argument list.
func argList(op optable.Op) string {
	if len(op.Params) == 0 {
		return ""
	}
	args := append([]string{}, op.Params...)
	if op.Variadic {
		args[len(args)-1] += "..."
	}
	return strings.Join(args, ", ")
}

// recordArgs renders the recorder call: the method name followed by every
// argument, flattening a variadic tail into the recorded argument list.
func recordArgs(op optable.Op) string {
	switch {
	case len(op.Params) == 0:
		return fmt.Sprintf("%q", op.Method)
	case op.Variadic && len(op.Params) == 1:
		return fmt.Sprintf("%q, %s...", op.Method, op.Params[0])
	case op.Variadic:
		fixed := strings.Join(op.Params[:len(op.Params)-1], ", ")
		tail := op.Params[len(op.Params)-1]
		return fmt.Sprintf("%q, append([]any{%s}, %s...)...", op.Method, fixed, tail)
	default:
		return fmt.Sprintf("%q, %s", op.Method, strings.Join(op.Params, ", "))
	}
}

const builderTpl = `// Code generated by opgen. DO NOT EDIT.

package mongopipe

import "go.mongodb.org/mongo-driver/v2/bson"

// Builder is the collaborator side of the fluent Operator API. Operator
// forwards every call here verbatim; Expr is the canonical implementation.
// The operator methods mirror the MongoDB aggregation operator reference,
// while Field, Operator and Document are the structural verbs every
// implementation shares.
type Builder interface {
	// Field switches the field context for the operators applied after it.
	Field(name string)

	// Operator applies an operator by name, for operators without a
	// dedicated method.
	Operator(name string, args ...any)

	// Document returns the assembled expression document and the first
	// error recorded while building it.
	Document() (bson.M, error)
{{range .}}
	// {{.Method}} {{.Doc}}
	{{.Method}}({{params .}})
{{end}}}
`

const operatorTpl = `// Code generated by opgen. DO NOT EDIT.

package mongopipe
{{range .}}
// {{.Method}} {{.Doc}}
func (o *Operator) {{.Method}}({{params .}}) *Operator {
	o.b.{{.Method}}({{args .}})
	return o
}
{{end}}`

const recorderTpl = `// Code generated by opgen. DO NOT EDIT.

package mongopipe

import "go.mongodb.org/mongo-driver/v2/bson"

// opRecorder implements Builder by recording every call in order. The
// forwarding tests walk the operator table and check that each Operator
// method lands here with its arguments intact.
type opRecorder struct {
	calls []recordedCall
}

type recordedCall struct {
	method string
	args   []any
}

func (r *opRecorder) record(method string, args ...any) {
	r.calls = append(r.calls, recordedCall{method: method, args: args})
}

func (r *opRecorder) Field(name string) {
	r.record("Field", name)
}

func (r *opRecorder) Operator(name string, args ...any) {
	r.record("Operator", append([]any{name}, args...)...)
}

func (r *opRecorder) Document() (bson.M, error) {
	r.record("Document")
	return bson.M{}, nil
}
{{range .}}
func (r *opRecorder) {{.Method}}({{params .}}) {
	r.record({{record .}})
}
{{end}}`
