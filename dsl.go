package mongopipe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gobuffalo/flect"
	"github.com/mitchellh/mapstructure"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"gopkg.in/yaml.v3"
)

// PipelineDSL is a declarative aggregation pipeline document:
//
//	{
//	  "collection": "users",
//	  "pipeline": [
//	    {"$match": {"age": {"$gt": "$1"}}},
//	    {"$sort": [["age", "DESC"], ["name", "ASC"]]}
//	  ],
//	  "params": ["$1"],
//	  "options": {"field_case": "snake", "map_id": true}
//	}
//
// Params declares the positional placeholders the document expects; $sort
// takes [field, order] pairs because JSON objects cannot hold key order.
type PipelineDSL struct {
	Collection string           `json:"collection" yaml:"collection"`
	Pipeline   []map[string]any `json:"pipeline" yaml:"pipeline"`
	Params     []string         `json:"params,omitempty" yaml:"params,omitempty"`
	Options    map[string]any   `json:"options,omitempty" yaml:"options,omitempty"`
}

// CompileOptions adjust how Build translates the stage tree.
type CompileOptions struct {
	// FieldCase rewrites document keys: "snake" or "camel". Empty leaves
	// them alone.
	FieldCase string `mapstructure:"field_case"`

	// MapID renames id keys to _id, per path segment.
	MapID bool `mapstructure:"map_id"`
}

// ParsePipeline parses the JSON form of a pipeline document. Numbers stay
// json.Number so Build can coerce them int64-first.
func ParsePipeline(src []byte) (*PipelineDSL, error) {
	dec := json.NewDecoder(bytes.NewReader(src))
	dec.UseNumber()

	var q PipelineDSL
	if err := dec.Decode(&q); err != nil {
		return nil, fmt.Errorf("mongopipe: parse pipeline: %w", err)
	}
	if q.Collection == "" {
		return nil, fmt.Errorf("mongopipe: pipeline document requires a collection")
	}
	return &q, nil
}

// ParsePipelineYAML parses the YAML form of a pipeline document.
func ParsePipelineYAML(src []byte) (*PipelineDSL, error) {
	var q PipelineDSL
	if err := yaml.Unmarshal(src, &q); err != nil {
		return nil, fmt.Errorf("mongopipe: parse pipeline yaml: %w", err)
	}
	if q.Collection == "" {
		return nil, fmt.Errorf("mongopipe: pipeline document requires a collection")
	}
	return &q, nil
}

// paramRef matches positional placeholders such as "$1"; field references
// like "$name" stay untouched.
var paramRef = regexp.MustCompile(`^\$([1-9][0-9]*)$`)

// SubstituteParams replaces $1..$N string placeholders anywhere in the
// stage tree with the matching positional value, modifying the document in
// place. A placeholder beyond the given values is an error, and a document
// that declares params must be given exactly that many values.
func (q *PipelineDSL) SubstituteParams(args []any) error {
	stages, err := q.substitutedStages(args)
	if err != nil {
		return err
	}
	q.Pipeline = stages
	return nil
}

// substitutedStages returns a substituted copy of the stage list, leaving
// the receiver untouched so one parsed document can be compiled repeatedly
// with different values.
func (q *PipelineDSL) substitutedStages(args []any) ([]map[string]any, error) {
	if len(q.Params) > 0 && len(args) != len(q.Params) {
		return nil, fmt.Errorf("mongopipe: document declares %d params, %d given", len(q.Params), len(args))
	}
	out := make([]map[string]any, len(q.Pipeline))
	for i, stage := range q.Pipeline {
		sub, err := substituteValue(stage, args)
		if err != nil {
			return nil, err
		}
		out[i] = sub.(map[string]any)
	}
	return out, nil
}

func substituteValue(v any, args []any) (any, error) {
	switch val := v.(type) {
	case string:
		m := paramRef.FindStringSubmatch(val)
		if m == nil {
			return v, nil
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n > len(args) {
			return nil, fmt.Errorf("mongopipe: param %s has no value, %d given", val, len(args))
		}
		return args[n-1], nil
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			sub, err := substituteValue(item, args)
			if err != nil {
				return nil, err
			}
			out[k] = sub
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			sub, err := substituteValue(item, args)
			if err != nil {
				return nil, err
			}
			out[i] = sub
		}
		return out, nil
	default:
		return v, nil
	}
}

// Build compiles the parsed stages into a driver pipeline, applying the
// document's options and converting $sort pairs into ordered keys.
func (q *PipelineDSL) Build() (mongo.Pipeline, error) {
	var opts CompileOptions
	if len(q.Options) > 0 {
		if err := mapstructure.Decode(q.Options, &opts); err != nil {
			return nil, fmt.Errorf("mongopipe: decode options: %w", err)
		}
	}
	switch opts.FieldCase {
	case "", "snake", "camel":
	default:
		return nil, fmt.Errorf("mongopipe: unknown field_case '%s'", opts.FieldCase)
	}

	out := make(mongo.Pipeline, 0, len(q.Pipeline))
	for _, stage := range q.Pipeline {
		doc, err := buildStage(stage, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

func buildStage(stage map[string]any, opts CompileOptions) (bson.D, error) {
	doc := make(bson.D, 0, len(stage))
	for name, v := range stage {
		built, err := buildEntry(name, v, opts)
		if err != nil {
			return nil, err
		}
		doc = append(doc, bson.E{Key: translateField(name, opts), Value: built})
	}
	return doc, nil
}

// buildEntry routes $sort pair arrays to the ordered conversion; everything
// else goes through the generic tree walk.
func buildEntry(key string, v any, opts CompileOptions) (any, error) {
	if key == "$sort" {
		if pairs, ok := v.([]any); ok {
			return sortPairs(pairs, opts)
		}
	}
	return buildValue(v, opts)
}

// buildValue walks the stage tree converting values: numbers are coerced
// int64-first, keys are translated and nested stage lists (such as $lookup
// sub-pipelines) get the same treatment as top-level ones.
func buildValue(v any, opts CompileOptions) (any, error) {
	switch val := v.(type) {
	case json.Number:
		return coerceNumber(val), nil
	case int:
		// yaml decodes integers as int
		return int64(val), nil
	case map[string]any:
		out := make(bson.M, len(val))
		for k, item := range val {
			built, err := buildEntry(k, item, opts)
			if err != nil {
				return nil, err
			}
			out[translateField(k, opts)] = built
		}
		return out, nil
	case []any:
		out := make(bson.A, len(val))
		for i, item := range val {
			built, err := buildValue(item, opts)
			if err != nil {
				return nil, err
			}
			out[i] = built
		}
		return out, nil
	default:
		return v, nil
	}
}

// coerceNumber keeps JSON numbers int64 when they have no fraction, the way
// document stores compare and index them.
func coerceNumber(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}

// translateField rewrites a document key per the compile options, segment by
// segment so dotted paths survive. Keys starting with $ are operators or
// variable references and stay as they are.
func translateField(k string, opts CompileOptions) string {
	if strings.HasPrefix(k, "$") {
		return k
	}
	if opts.FieldCase == "" && !opts.MapID {
		return k
	}
	parts := strings.Split(k, ".")
	for i, part := range parts {
		if opts.MapID && part == "id" {
			parts[i] = "_id"
			continue
		}
		switch opts.FieldCase {
		case "snake":
			parts[i] = flect.Underscore(part)
		case "camel":
			parts[i] = flect.Camelize(part)
		}
	}
	return strings.Join(parts, ".")
}

// sortPairs converts a [[field, order], ...] array into an ordered sort
// document. Orders are 1, -1 or the strings ASC and DESC in any case.
func sortPairs(pairs []any, opts CompileOptions) (bson.D, error) {
	doc := make(bson.D, 0, len(pairs))
	for _, item := range pairs {
		pair, ok := item.([]any)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("mongopipe: $sort entries must be [field, order] pairs")
		}
		field, ok := pair[0].(string)
		if !ok {
			return nil, fmt.Errorf("mongopipe: $sort field must be a string, got %T", pair[0])
		}
		order, err := sortOrder(pair[1])
		if err != nil {
			return nil, err
		}
		doc = append(doc, bson.E{Key: translateField(field, opts), Value: order})
	}
	return doc, nil
}

func sortOrder(v any) (int, error) {
	switch val := v.(type) {
	case string:
		switch strings.ToLower(val) {
		case "asc", "ascending":
			return 1, nil
		case "desc", "descending":
			return -1, nil
		}
	case json.Number:
		if i, err := val.Int64(); err == nil && (i == 1 || i == -1) {
			return int(i), nil
		}
	case int:
		if val == 1 || val == -1 {
			return val, nil
		}
	case float64:
		if val == 1 || val == -1 {
			return int(val), nil
		}
	}
	return 0, fmt.Errorf("mongopipe: invalid $sort order %v", v)
}
