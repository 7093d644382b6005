package mongopipe

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Pipeline assembles aggregation stages in call order. Expression-valued
// arguments accept native bson values, *Expr and *Operator; errors from
// nested expressions accumulate and the first one surfaces when Pipeline is
// called.
type Pipeline struct {
	stages mongo.Pipeline
	err    error
}

// NewPipeline returns an empty pipeline builder.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// UnwindOptions carries the long-form $unwind options.
type UnwindOptions struct {
	IncludeArrayIndex          string
	PreserveNullAndEmptyArrays bool
}

// GraphLookupOptions carries the optional $graphLookup fields. MaxDepth is a
// pointer because zero is a meaningful depth.
type GraphLookupOptions struct {
	MaxDepth                *int64
	DepthField              string
	RestrictSearchWithMatch any
}

// MergeOptions carries the optional $merge fields.
type MergeOptions struct {
	On             []string
	WhenMatched    string
	WhenNotMatched string
}

func (p *Pipeline) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

// value normalizes an expression argument, recording the first error.
func (p *Pipeline) value(v any) any {
	out, err := normalizeValue(v)
	if err != nil {
		p.fail(err)
	}
	return out
}

// sub flattens a nested pipeline, carrying its error over. An empty nested
// pipeline still marshals as an array rather than null.
func (p *Pipeline) sub(nested *Pipeline) mongo.Pipeline {
	stages, err := nested.Pipeline()
	if err != nil {
		p.fail(err)
	}
	if stages == nil {
		stages = mongo.Pipeline{}
	}
	return stages
}

// stage appends a single-key stage document.
func (p *Pipeline) stage(name string, v any) *Pipeline {
	p.stages = append(p.stages, bson.D{{Key: name, Value: v}})
	return p
}

// Match appends $match with a query filter.
func (p *Pipeline) Match(filter any) *Pipeline {
	return p.stage("$match", p.value(filter))
}

// MatchExpr appends $match wrapping the argument in $expr, which lets
// builder expressions run in query position.
func (p *Pipeline) MatchExpr(expr any) *Pipeline {
	return p.stage("$match", bson.M{"$expr": p.value(expr)})
}

// Project appends $project with the given specification.
func (p *Pipeline) Project(spec any) *Pipeline {
	return p.stage("$project", p.value(spec))
}

// AddFields appends $addFields.
func (p *Pipeline) AddFields(fields any) *Pipeline {
	return p.stage("$addFields", p.value(fields))
}

// Set appends $set, the $addFields alias.
func (p *Pipeline) Set(fields any) *Pipeline {
	return p.stage("$set", p.value(fields))
}

// Unset appends $unset with one field name or an array of them.
func (p *Pipeline) Unset(fields ...string) *Pipeline {
	if len(fields) == 1 {
		return p.stage("$unset", fields[0])
	}
	arr := make(bson.A, len(fields))
	for i, f := range fields {
		arr[i] = f
	}
	return p.stage("$unset", arr)
}

// Group appends $group with the grouping id and accumulator fields. A
// multi-field Expr document built with Field works directly as fields:
//
//	e := mongopipe.NewExpr()
//	e.Field("total").Sum("$qty")
//	doc, _ := e.Document()
//	p.Group("$state", doc)
func (p *Pipeline) Group(id any, fields bson.M) *Pipeline {
	doc := bson.M{"_id": p.value(id)}
	for k, v := range fields {
		doc[k] = p.value(v)
	}
	return p.stage("$group", doc)
}

// Sort appends $sort; bson.D keeps the key order significant to compound
// sorts.
func (p *Pipeline) Sort(sort bson.D) *Pipeline {
	return p.stage("$sort", sort)
}

// SortByCount appends $sortByCount.
func (p *Pipeline) SortByCount(expr any) *Pipeline {
	return p.stage("$sortByCount", p.value(expr))
}

// Limit appends $limit.
func (p *Pipeline) Limit(n int64) *Pipeline {
	return p.stage("$limit", n)
}

// Skip appends $skip.
func (p *Pipeline) Skip(n int64) *Pipeline {
	return p.stage("$skip", n)
}

// Sample appends $sample selecting n random documents.
func (p *Pipeline) Sample(n int64) *Pipeline {
	return p.stage("$sample", bson.M{"size": n})
}

// Count appends $count storing the document count under the given field.
func (p *Pipeline) Count(field string) *Pipeline {
	return p.stage("$count", field)
}

// Unwind appends $unwind with the short path form.
func (p *Pipeline) Unwind(path string) *Pipeline {
	return p.stage("$unwind", path)
}

// UnwindWithOptions appends $unwind with the document form.
func (p *Pipeline) UnwindWithOptions(path string, opts UnwindOptions) *Pipeline {
	doc := bson.M{"path": path}
	if opts.IncludeArrayIndex != "" {
		doc["includeArrayIndex"] = opts.IncludeArrayIndex
	}
	if opts.PreserveNullAndEmptyArrays {
		doc["preserveNullAndEmptyArrays"] = true
	}
	return p.stage("$unwind", doc)
}

// Lookup appends an equality $lookup.
func (p *Pipeline) Lookup(from, localField, foreignField, as string) *Pipeline {
	return p.stage("$lookup", bson.M{
		"from":         from,
		"localField":   localField,
		"foreignField": foreignField,
		"as":           as,
	})
}

// LookupPipeline appends a $lookup running a sub-pipeline on the joined
// collection, with let bindings available as variables inside it.
func (p *Pipeline) LookupPipeline(from string, let bson.M, sub *Pipeline, as string) *Pipeline {
	doc := bson.M{
		"from":     from,
		"pipeline": p.sub(sub),
		"as":       as,
	}
	if len(let) > 0 {
		doc["let"] = p.value(let)
	}
	return p.stage("$lookup", doc)
}

// GraphLookup appends $graphLookup; opts may be nil.
func (p *Pipeline) GraphLookup(from, startWith, connectFromField, connectToField, as string, opts *GraphLookupOptions) *Pipeline {
	doc := bson.M{
		"from":             from,
		"startWith":        startWith,
		"connectFromField": connectFromField,
		"connectToField":   connectToField,
		"as":               as,
	}
	if opts != nil {
		if opts.MaxDepth != nil {
			doc["maxDepth"] = *opts.MaxDepth
		}
		if opts.DepthField != "" {
			doc["depthField"] = opts.DepthField
		}
		if opts.RestrictSearchWithMatch != nil {
			doc["restrictSearchWithMatch"] = p.value(opts.RestrictSearchWithMatch)
		}
	}
	return p.stage("$graphLookup", doc)
}

// Facet appends $facet running each named sub-pipeline over the same input.
func (p *Pipeline) Facet(facets map[string]*Pipeline) *Pipeline {
	doc := make(bson.M, len(facets))
	for name, nested := range facets {
		doc[name] = p.sub(nested)
	}
	return p.stage("$facet", doc)
}

// Bucket appends $bucket. defaultBucket and output may be nil.
func (p *Pipeline) Bucket(groupBy any, boundaries []any, defaultBucket any, output bson.M) *Pipeline {
	doc := bson.M{
		"groupBy":    p.value(groupBy),
		"boundaries": p.value(boundaries),
	}
	if defaultBucket != nil {
		doc["default"] = p.value(defaultBucket)
	}
	if len(output) > 0 {
		doc["output"] = p.value(output)
	}
	return p.stage("$bucket", doc)
}

// BucketAuto appends $bucketAuto. granularity and output may be empty.
func (p *Pipeline) BucketAuto(groupBy any, buckets int64, granularity string, output bson.M) *Pipeline {
	doc := bson.M{
		"groupBy": p.value(groupBy),
		"buckets": buckets,
	}
	if granularity != "" {
		doc["granularity"] = granularity
	}
	if len(output) > 0 {
		doc["output"] = p.value(output)
	}
	return p.stage("$bucketAuto", doc)
}

// ReplaceRoot appends $replaceRoot promoting the expression to the document
// root.
func (p *Pipeline) ReplaceRoot(newRoot any) *Pipeline {
	return p.stage("$replaceRoot", bson.M{"newRoot": p.value(newRoot)})
}

// ReplaceWith appends $replaceWith, the $replaceRoot shorthand.
func (p *Pipeline) ReplaceWith(expr any) *Pipeline {
	return p.stage("$replaceWith", p.value(expr))
}

// Redact appends $redact.
func (p *Pipeline) Redact(expr any) *Pipeline {
	return p.stage("$redact", p.value(expr))
}

// UnionWith appends $unionWith; pass a nil sub-pipeline for the collection
// shorthand.
func (p *Pipeline) UnionWith(coll string, sub *Pipeline) *Pipeline {
	if sub == nil {
		return p.stage("$unionWith", coll)
	}
	return p.stage("$unionWith", bson.M{
		"coll":     coll,
		"pipeline": p.sub(sub),
	})
}

// Out appends $out writing results to the named collection.
func (p *Pipeline) Out(coll string) *Pipeline {
	return p.stage("$out", coll)
}

// Merge appends $merge writing results into the named collection; opts may
// be nil.
func (p *Pipeline) Merge(into string, opts *MergeOptions) *Pipeline {
	doc := bson.M{"into": into}
	if opts != nil {
		if len(opts.On) == 1 {
			doc["on"] = opts.On[0]
		} else if len(opts.On) > 1 {
			arr := make(bson.A, len(opts.On))
			for i, f := range opts.On {
				arr[i] = f
			}
			doc["on"] = arr
		}
		if opts.WhenMatched != "" {
			doc["whenMatched"] = opts.WhenMatched
		}
		if opts.WhenNotMatched != "" {
			doc["whenNotMatched"] = opts.WhenNotMatched
		}
	}
	return p.stage("$merge", doc)
}

// Stage appends a raw stage document, for stages without a dedicated
// method.
func (p *Pipeline) Stage(stage bson.D) *Pipeline {
	p.stages = append(p.stages, stage)
	return p
}

// Pipeline returns the assembled stages and the first error recorded while
// building them.
func (p *Pipeline) Pipeline() (mongo.Pipeline, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.stages, nil
}
