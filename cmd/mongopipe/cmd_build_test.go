package main

import (
	"strings"
	"testing"

	"github.com/dosco/mongopipe"
)

func TestParseParamVal(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"false", false},
		{"null", nil},
		{"25", int64(25)},
		{"-3", int64(-3)},
		{"2.5", 2.5},
		{"John", "John"},
		{"10x", "10x"},
	}
	for _, tt := range tests {
		if got := parseParamVal(tt.in); got != tt.want {
			t.Errorf("parseParamVal(%q) = %v (%T), want %v (%T)", tt.in, got, got, tt.want, tt.want)
		}
	}
}

func TestValidOutputFormat(t *testing.T) {
	tests := []struct {
		format string
		want   bool
	}{
		{"relaxed", true},
		{"canonical", true},
		{"typo", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := validOutputFormat(tt.format); got != tt.want {
			t.Errorf("validOutputFormat(%q) = %v, want %v", tt.format, got, tt.want)
		}
	}
}

func TestRenderPlan(t *testing.T) {
	c, err := mongopipe.NewCompiler(0)
	if err != nil {
		t.Fatalf("NewCompiler failed: %v", err)
	}
	plan, err := c.CompileJSON([]byte(`{"collection":"users","pipeline":[{"$limit":3}]}`), nil)
	if err != nil {
		t.Fatalf("CompileJSON failed: %v", err)
	}

	prev := conf
	conf = &Config{OutputFormat: "relaxed"}
	defer func() { conf = prev }()

	out, err := renderPlan(plan)
	if err != nil {
		t.Fatalf("renderPlan failed: %v", err)
	}
	if !strings.Contains(string(out), `"collection":"users"`) {
		t.Errorf("missing collection in output: %s", out)
	}
	if !strings.Contains(string(out), `"$limit":3`) {
		t.Errorf("missing stage in relaxed output: %s", out)
	}

	conf.OutputFormat = "canonical"
	out, err = renderPlan(plan)
	if err != nil {
		t.Fatalf("renderPlan failed: %v", err)
	}
	if !strings.Contains(string(out), "$numberLong") {
		t.Errorf("canonical output should carry type wrappers: %s", out)
	}
}
