package mongopipe

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const defaultPlanCacheSize = 512

// Plan is a compiled pipeline ready to hand to a driver Aggregate call.
type Plan struct {
	Collection  string
	Pipeline    mongo.Pipeline
	Fingerprint uint64
}

// Compiler parses pipeline documents, substitutes params and builds driver
// pipelines, caching each plan by a structural fingerprint so repeated
// compiles of an unchanged document return the cached plan.
type Compiler struct {
	cache *PlanCache
}

// NewCompiler returns a compiler with a plan cache of the given size; sizes
// below one fall back to the default.
func NewCompiler(cacheSize int) (*Compiler, error) {
	if cacheSize < 1 {
		cacheSize = defaultPlanCacheSize
	}
	cache, err := NewPlanCache(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Compiler{cache: cache}, nil
}

// CompileJSON parses the JSON form of a pipeline document and compiles it
// with the given positional params.
func (c *Compiler) CompileJSON(src []byte, params []any) (*Plan, error) {
	q, err := ParsePipeline(src)
	if err != nil {
		return nil, err
	}
	return c.Compile(q, params)
}

// CompileYAML is CompileJSON for the YAML form.
func (c *Compiler) CompileYAML(src []byte, params []any) (*Plan, error) {
	q, err := ParsePipelineYAML(src)
	if err != nil {
		return nil, err
	}
	return c.Compile(q, params)
}

// Compile substitutes params into the parsed document and builds its plan,
// consulting the cache first. Substitution works on a copy, so one parse can
// be compiled repeatedly with different params and the fingerprint of a
// document never drifts from what a fresh parse of it would hash.
func (c *Compiler) Compile(q *PipelineDSL, params []any) (*Plan, error) {
	key, err := Fingerprint(q, params)
	if err != nil {
		return nil, err
	}
	if plan, ok := c.cache.Get(key); ok {
		return plan, nil
	}

	stages, err := q.substitutedStages(params)
	if err != nil {
		return nil, err
	}
	sub := &PipelineDSL{
		Collection: q.Collection,
		Pipeline:   stages,
		Params:     q.Params,
		Options:    q.Options,
	}
	built, err := sub.Build()
	if err != nil {
		return nil, err
	}

	plan := &Plan{Collection: q.Collection, Pipeline: built, Fingerprint: key}
	c.cache.Set(key, plan)
	return plan, nil
}

// Fingerprint hashes the parsed document together with its params. The hash
// is structural: formatting and key order do not affect it, so it doubles
// as a change detector for watch mode.
func Fingerprint(q *PipelineDSL, params []any) (uint64, error) {
	h, err := hashstructure.Hash(struct {
		DSL    *PipelineDSL
		Params []any
	}{q, params}, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("mongopipe: fingerprint: %w", err)
	}
	return h, nil
}
