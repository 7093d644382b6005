package optable

import (
	"strings"
	"testing"
)

func TestOpsMethodsAreUnique(t *testing.T) {
	seen := make(map[string]bool, len(Ops))
	for _, op := range Ops {
		if seen[op.Method] {
			t.Errorf("duplicate method %s", op.Method)
		}
		seen[op.Method] = true
	}
}

func TestOpsShape(t *testing.T) {
	for _, op := range Ops {
		if op.Method == "" {
			t.Fatal("op with an empty method name")
		}
		if !strings.HasPrefix(op.Name, "$") {
			t.Errorf("%s: operator name %q does not start with $", op.Method, op.Name)
		}
		if op.Variadic && len(op.Params) == 0 {
			t.Errorf("%s: variadic without a named tail parameter", op.Method)
		}
		if op.Doc == "" {
			t.Errorf("%s: missing doc line", op.Method)
		}
	}
}

func TestByMethod(t *testing.T) {
	tests := []struct {
		method   string
		wantName string
		wantOK   bool
	}{
		{"Add", "$add", true},
		{"DateDiff", "$dateDiff", true},
		{"Case", "$switch", true},
		{"Sum", "$sum", true},
		{"Bogus", "", false},
	}
	for _, tt := range tests {
		op, ok := ByMethod(tt.method)
		if ok != tt.wantOK {
			t.Errorf("ByMethod(%q) ok = %v, want %v", tt.method, ok, tt.wantOK)
			continue
		}
		if ok && op.Name != tt.wantName {
			t.Errorf("ByMethod(%q).Name = %q, want %q", tt.method, op.Name, tt.wantName)
		}
	}
}
