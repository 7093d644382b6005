package mongopipe

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const compilerTestSrc = `{
	"collection": "users",
	"pipeline": [
		{"$match": {"age": {"$gte": "$1"}}},
		{"$sort": [["age", "DESC"]]},
		{"$limit": 5}
	],
	"params": ["$1"]
}`

func TestCompileJSON(t *testing.T) {
	c, err := NewCompiler(0)
	if err != nil {
		t.Fatalf("NewCompiler returned error: %v", err)
	}
	plan, err := c.CompileJSON([]byte(compilerTestSrc), []any{25})
	if err != nil {
		t.Fatalf("CompileJSON returned error: %v", err)
	}

	if plan.Collection != "users" {
		t.Errorf("collection = %q, want %q", plan.Collection, "users")
	}
	if plan.Fingerprint == 0 {
		t.Error("fingerprint is zero")
	}
	want := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"age": bson.M{"$gte": int64(25)}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "age", Value: -1}}}},
		bson.D{{Key: "$limit", Value: int64(5)}},
	}
	if !reflect.DeepEqual(plan.Pipeline, want) {
		t.Errorf("pipeline = %v, want %v", plan.Pipeline, want)
	}
}

func TestCompileYAML(t *testing.T) {
	src := `
collection: orders
pipeline:
  - $match:
      status: $1
params: ["$1"]
`
	c, err := NewCompiler(0)
	if err != nil {
		t.Fatalf("NewCompiler returned error: %v", err)
	}
	plan, err := c.CompileYAML([]byte(src), []any{"paid"})
	if err != nil {
		t.Fatalf("CompileYAML returned error: %v", err)
	}
	want := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"status": "paid"}}},
	}
	if !reflect.DeepEqual(plan.Pipeline, want) {
		t.Errorf("pipeline = %v, want %v", plan.Pipeline, want)
	}
}

func TestCompileReturnsCachedPlan(t *testing.T) {
	c, err := NewCompiler(16)
	if err != nil {
		t.Fatalf("NewCompiler returned error: %v", err)
	}

	p1, err := c.CompileJSON([]byte(compilerTestSrc), []any{25})
	if err != nil {
		t.Fatalf("CompileJSON returned error: %v", err)
	}
	p2, err := c.CompileJSON([]byte(compilerTestSrc), []any{25})
	if err != nil {
		t.Fatalf("CompileJSON returned error: %v", err)
	}
	if p1 != p2 {
		t.Error("second compile did not return the cached plan")
	}

	p3, err := c.CompileJSON([]byte(compilerTestSrc), []any{30})
	if err != nil {
		t.Fatalf("CompileJSON returned error: %v", err)
	}
	if p1 == p3 {
		t.Error("different params returned the same plan")
	}
	if p1.Fingerprint == p3.Fingerprint {
		t.Error("different params produced the same fingerprint")
	}
}

func TestCompileReusedDocument(t *testing.T) {
	c, err := NewCompiler(16)
	if err != nil {
		t.Fatalf("NewCompiler returned error: %v", err)
	}
	q, err := ParsePipeline([]byte(compilerTestSrc))
	if err != nil {
		t.Fatalf("ParsePipeline returned error: %v", err)
	}

	p1, err := c.Compile(q, []any{25})
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	p2, err := c.Compile(q, []any{30})
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}

	if got := p1.Pipeline[0][0].Value.(bson.M)["age"].(bson.M)["$gte"]; got != int64(25) {
		t.Errorf("first compile age.$gte = %v, want 25", got)
	}
	if got := p2.Pipeline[0][0].Value.(bson.M)["age"].(bson.M)["$gte"]; got != int64(30) {
		t.Errorf("second compile age.$gte = %v, want 30", got)
	}

	// the parsed document keeps its placeholder
	if got := q.Pipeline[0]["$match"].(map[string]any)["age"].(map[string]any)["$gte"]; got != "$1" {
		t.Errorf("document age.$gte = %v, want the $1 placeholder", got)
	}

	// a reused document fingerprints the same as a fresh parse of it
	fresh, err := ParsePipeline([]byte(compilerTestSrc))
	if err != nil {
		t.Fatalf("ParsePipeline returned error: %v", err)
	}
	fp, err := Fingerprint(fresh, []any{30})
	if err != nil {
		t.Fatalf("Fingerprint returned error: %v", err)
	}
	if p2.Fingerprint != fp {
		t.Errorf("reused document fingerprint = %d, fresh parse = %d", p2.Fingerprint, fp)
	}
}

func TestFingerprintIgnoresFormatting(t *testing.T) {
	a := `{"collection": "users", "pipeline": [{"$match": {"a": 1, "b": 2}}]}`
	b := `{
		"pipeline": [{"$match": {"b": 2, "a": 1}}],
		"collection": "users"
	}`

	qa, err := ParsePipeline([]byte(a))
	if err != nil {
		t.Fatalf("ParsePipeline returned error: %v", err)
	}
	qb, err := ParsePipeline([]byte(b))
	if err != nil {
		t.Fatalf("ParsePipeline returned error: %v", err)
	}

	fa, err := Fingerprint(qa, nil)
	if err != nil {
		t.Fatalf("Fingerprint returned error: %v", err)
	}
	fb, err := Fingerprint(qb, nil)
	if err != nil {
		t.Fatalf("Fingerprint returned error: %v", err)
	}
	if fa != fb {
		t.Errorf("fingerprints differ for equivalent documents: %d != %d", fa, fb)
	}
}

func TestCompileMissingParam(t *testing.T) {
	c, err := NewCompiler(0)
	if err != nil {
		t.Fatalf("NewCompiler returned error: %v", err)
	}
	if _, err := c.CompileJSON([]byte(compilerTestSrc), nil); err == nil {
		t.Error("CompileJSON accepted a pipeline with an unbound param")
	}
}

func TestPlanCache(t *testing.T) {
	cache, err := NewPlanCache(16)
	if err != nil {
		t.Fatalf("NewPlanCache returned error: %v", err)
	}

	if _, ok := cache.Get(1); ok {
		t.Error("empty cache reported a hit")
	}

	plan := &Plan{Collection: "users", Fingerprint: 1}
	cache.Set(1, plan)

	got, ok := cache.Get(1)
	if !ok {
		t.Fatal("cache missed a stored plan")
	}
	if got != plan {
		t.Error("cache returned a different plan")
	}
	if cache.Len() != 1 {
		t.Errorf("cache len = %d, want 1", cache.Len())
	}
}
