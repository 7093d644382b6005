package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/sync/errgroup"

	"github.com/dosco/mongopipe"
)

var (
	buildParams []string
	buildFormat string
	buildIndent bool
	buildOut    string
)

// buildCmd creates the build command
func buildCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "build <file> ...",
		Short: "Compile pipeline documents into aggregation JSON",
		Long: `Compile declarative pipeline documents (JSON or YAML) into MongoDB
aggregation pipelines, printed as extended JSON.

Positional $1..$N placeholders in the documents are filled from --params,
in order. Values parse as booleans, null and numbers before falling back
to strings.`,
		Args: cobra.MinimumNArgs(1),
		Run:  cmdBuild,
	}
	c.Flags().StringSliceVar(&buildParams, "params", nil, "values for $1..$N placeholders")
	c.Flags().StringVar(&buildFormat, "format", "", "output format: relaxed or canonical")
	c.Flags().BoolVar(&buildIndent, "indent", false, "indent the output")
	c.Flags().StringVar(&buildOut, "out", "", "write output to a file instead of stdout")
	return c
}

// cmdBuild is the handler for the build command
func cmdBuild(cmd *cobra.Command, args []string) {
	setup(cpath)

	if !validOutputFormat(outputFormat()) {
		log.Fatalf("Unknown output format '%s'", outputFormat())
	}

	params := parseParams(buildParams)

	compiler, err := mongopipe.NewCompiler(conf.CacheSize)
	if err != nil {
		log.Fatalf("Failed to create compiler: %s", err)
	}

	results := make([][]byte, len(args))

	var g errgroup.Group
	for i, fname := range args {
		g.Go(func() error {
			plan, err := compileFile(compiler, fname, params)
			if err != nil {
				return errors.Wrap(err, fname)
			}
			out, err := renderPlan(plan)
			if err != nil {
				return errors.Wrap(err, fname)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("Failed to build pipeline: %s", err)
	}

	if err := writeResults(results); err != nil {
		log.Fatalf("Failed to write output: %s", err)
	}
}

// compileFile compiles one pipeline document, picking the parser by file
// extension.
func compileFile(compiler *mongopipe.Compiler, fname string, params []any) (*mongopipe.Plan, error) {
	src, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(fname)) {
	case ".yml", ".yaml":
		return compiler.CompileYAML(src, params)
	default:
		return compiler.CompileJSON(src, params)
	}
}

// renderPlan encodes a compiled plan as MongoDB extended JSON
func renderPlan(plan *mongopipe.Plan) ([]byte, error) {
	doc := bson.D{
		{Key: "collection", Value: plan.Collection},
		{Key: "pipeline", Value: plan.Pipeline},
	}

	canonical := outputFormat() == "canonical"
	if indentOutput() {
		return bson.MarshalExtJSONIndent(doc, canonical, false, "", "  ")
	}
	return bson.MarshalExtJSON(doc, canonical, false)
}

// outputFormat resolves the extended JSON flavor; the flag wins over config
func outputFormat() string {
	if buildFormat != "" {
		return buildFormat
	}
	return conf.OutputFormat
}

// validOutputFormat reports whether the format is one renderPlan knows
func validOutputFormat(format string) bool {
	switch format {
	case "relaxed", "canonical":
		return true
	}
	return false
}

// indentOutput resolves output indenting; the flag wins over config
func indentOutput() bool {
	return buildIndent || conf.Indent
}

// writeResults writes one JSON document per compiled file, to stdout or the
// --out file
func writeResults(results [][]byte) error {
	var sb strings.Builder
	for _, r := range results {
		sb.Write(r)
		sb.WriteByte('\n')
	}

	if buildOut == "" {
		_, err := os.Stdout.WriteString(sb.String())
		return err
	}
	return os.WriteFile(buildOut, []byte(sb.String()), 0644)
}

// parseParams converts --params values the way pipeline documents type them
func parseParams(vals []string) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = parseParamVal(v)
	}
	return out
}

// parseParamVal types one param value: true, false and null are literals,
// numbers parse int64-first and anything else stays a string.
func parseParamVal(v string) any {
	switch v {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}
