package errors

import (
	"strings"
	"testing"
)

func TestValidateVertexLabel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "A", false},
		{"valid with dash", "node-1", false},
		{"valid with space", "New York", false},
		{"valid unicode", "Zürich", false},
		{"valid max length", strings.Repeat("x", MaxLabelLength), false},

		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"leading space", " A", true},
		{"trailing tab", "A\t", true},
		{"too long", strings.Repeat("x", MaxLabelLength+1), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"separator", "a:b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVertexLabel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVertexLabel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidVertex) {
				t.Errorf("ValidateVertexLabel(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidVertex)
			}
		})
	}
}

func TestParseEdgeSpec(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantFrom string
		wantTo   string
		wantErr  bool
	}{
		{"simple", "A:B", "A", "B", false},
		{"self loop", "A:A", "A", "A", false},
		{"long labels", "berlin:paris", "berlin", "paris", false},

		{"no separator", "A-B", "", "", true},
		{"missing from", ":B", "", "", true},
		{"missing to", "A:", "", "", true},
		{"three parts", "A:B:C", "", "", true},
		{"padded", "A : B", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := ParseEdgeSpec(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEdgeSpec(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !Is(err, ErrCodeInvalidEdge) {
					t.Errorf("ParseEdgeSpec(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidEdge)
				}
				return
			}
			if from != tt.wantFrom || to != tt.wantTo {
				t.Errorf("ParseEdgeSpec(%q) = (%q, %q), want (%q, %q)", tt.input, from, to, tt.wantFrom, tt.wantTo)
			}
		})
	}
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "graph.toml", false},
		{"absolute", "/etc/graphwalk/graph.toml", false},
		{"upper case extension", "GRAPH.TOML", false},

		{"empty", "", true},
		{"wrong extension", "graph.yaml", true},
		{"no extension", "graph", true},
		{"control char", "gra\x01ph.toml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfigPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfigPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
