package mongopipe

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Integration test that requires a running MongoDB instance
// Use testcontainers or skip if MongoDB is not available

func TestWithMongoDB(t *testing.T) {
	mongoURI := "mongodb://localhost:27017"

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(mongoURI))
	if err != nil {
		t.Skipf("Skipping MongoDB integration test: %v", err)
	}

	// Check if MongoDB is actually running
	if err := client.Ping(ctx, nil); err != nil {
		t.Skipf("Skipping MongoDB integration test - server not available: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database("mongopipe_test")
	users := db.Collection("users")

	// Clean up before test
	users.Drop(ctx)

	testDocs := []any{
		bson.M{"name": "Alice", "age": 30, "state": "CA"},
		bson.M{"name": "Bob", "age": 25, "state": "NY"},
		bson.M{"name": "Charlie", "age": 35, "state": "CA"},
	}
	_, err = users.InsertMany(ctx, testDocs)
	if err != nil {
		t.Fatalf("Failed to insert test data: %v", err)
	}
	defer db.Drop(ctx)

	t.Run("builder pipeline", func(t *testing.T) {
		cond := NewOperator(NewExpr()).Gte("$age", 30)
		stages, err := NewPipeline().
			MatchExpr(cond).
			Sort(bson.D{{Key: "name", Value: 1}}).
			Project(bson.M{"_id": 0, "name": 1}).
			Pipeline()
		if err != nil {
			t.Fatalf("Pipeline failed: %v", err)
		}

		got := runAggregate(ctx, t, users, stages)
		if len(got) != 2 {
			t.Fatalf("Expected 2 users, got %d", len(got))
		}
		if got[0]["name"] != "Alice" {
			t.Errorf("Expected first user to be Alice, got %v", got[0]["name"])
		}
		if got[1]["name"] != "Charlie" {
			t.Errorf("Expected second user to be Charlie, got %v", got[1]["name"])
		}
	})

	t.Run("group accumulators", func(t *testing.T) {
		e := NewExpr()
		e.Field("avgAge")
		e.Avg("$age")
		e.Field("total")
		e.Sum(1)
		doc, err := e.Document()
		if err != nil {
			t.Fatalf("Document failed: %v", err)
		}

		stages, err := NewPipeline().Group(nil, doc).Pipeline()
		if err != nil {
			t.Fatalf("Pipeline failed: %v", err)
		}

		got := runAggregate(ctx, t, users, stages)
		if len(got) != 1 {
			t.Fatalf("Expected 1 group, got %d", len(got))
		}
		if avg, _ := got[0]["avgAge"].(float64); avg != 30 {
			t.Errorf("Expected avgAge 30, got %v", got[0]["avgAge"])
		}
		if n := toInt64(got[0]["total"]); n != 3 {
			t.Errorf("Expected total 3, got %v", got[0]["total"])
		}
	})

	t.Run("compiled pipeline", func(t *testing.T) {
		src := `{
			"collection": "users",
			"pipeline": [
				{"$match": {"age": {"$gte": "$1"}}},
				{"$sort": [["age", "DESC"]]}
			],
			"params": ["$1"]
		}`
		c, err := NewCompiler(0)
		if err != nil {
			t.Fatalf("NewCompiler failed: %v", err)
		}
		plan, err := c.CompileJSON([]byte(src), []any{30})
		if err != nil {
			t.Fatalf("CompileJSON failed: %v", err)
		}

		got := runAggregate(ctx, t, db.Collection(plan.Collection), plan.Pipeline)
		if len(got) != 2 {
			t.Fatalf("Expected 2 users, got %d", len(got))
		}
		if got[0]["name"] != "Charlie" {
			t.Errorf("Expected first user to be Charlie, got %v", got[0]["name"])
		}
		if got[1]["name"] != "Alice" {
			t.Errorf("Expected second user to be Alice, got %v", got[1]["name"])
		}
	})
}

func runAggregate(ctx context.Context, t *testing.T, coll *mongo.Collection, stages mongo.Pipeline) []bson.M {
	t.Helper()

	cur, err := coll.Aggregate(ctx, stages)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	var out []bson.M
	if err := cur.All(ctx, &out); err != nil {
		t.Fatalf("Cursor read failed: %v", err)
	}
	return out
}

// toInt64 widens whatever integer type the server handed back.
func toInt64(v any) int64 {
	switch n := v.(type) {
	case int32:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	}
	return 0
}
