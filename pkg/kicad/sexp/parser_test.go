package sexp

import (
	"testing"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // String() form of the first expression
	}{
		{
			name:  "flat list",
			input: `(layer F.Cu)`,
			want:  `(layer F.Cu)`,
		},
		{
			name:  "nested list",
			input: `(pad smd (at 1 2))`,
			want:  `(pad smd (at 1 2))`,
		},
		{
			name:  "quoted token keeps quotes",
			input: `(layer "F.Cu")`,
			want:  `(layer "F.Cu")`,
		},
		{
			name:  "quoted token with spaces is one atom",
			input: `(descr "Keyboard switch footprint")`,
			want:  `(descr "Keyboard switch footprint")`,
		},
		{
			name:  "quoted token with parens is one atom",
			input: `(descr "pitch (metric)")`,
			want:  `(descr "pitch (metric)")`,
		},
		{
			name:  "escaped quote inside string",
			input: `(descr "a \"b\" c")`,
			want:  `(descr "a \"b\" c")`,
		},
		{
			name:  "collapses whitespace and newlines",
			input: "(footprint\n  \"X\"\n  (at 1 2))",
			want:  `(footprint "X" (at 1 2))`,
		},
		{
			name:  "empty list",
			input: `()`,
			want:  `()`,
		},
		{
			name:  "bare atom",
			input: `hide`,
			want:  `hide`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sexps, err := ParseString(tt.input)
			if err != nil {
				t.Fatalf("ParseString(%q) unexpected error: %v", tt.input, err)
			}
			if len(sexps) == 0 {
				t.Fatalf("ParseString(%q) returned no expressions", tt.input)
			}
			if got := sexps[0].String(); got != tt.want {
				t.Errorf("ParseString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseStringMultipleTopLevel(t *testing.T) {
	sexps, err := ParseString(`(a 1) (b 2)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sexps) != 2 {
		t.Fatalf("expected 2 expressions, got %d", len(sexps))
	}
	if got := sexps[1].String(); got != "(b 2)" {
		t.Errorf("second expression = %q, want %q", got, "(b 2)")
	}
}

func TestParseStringErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unterminated list", input: `(a b`},
		{name: "unterminated nested list", input: `(a (b c)`},
		{name: "stray closing paren", input: `)`},
		{name: "trailing closing paren", input: `(a b))`},
		{name: "unterminated string", input: `(descr "oops)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseString(tt.input); err == nil {
				t.Errorf("ParseString(%q) expected error, got nil", tt.input)
			}
		})
	}
}

func TestParseStringEmptyInput(t *testing.T) {
	sexps, err := ParseString("  \n  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sexps) != 0 {
		t.Errorf("expected no expressions, got %d", len(sexps))
	}
}

func TestListAccessors(t *testing.T) {
	sexps, err := ParseString(`(pad "1" smd)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, ok := sexps[0].(*List)
	if !ok {
		t.Fatalf("expected *List, got %T", sexps[0])
	}

	if list.Len() != 3 {
		t.Errorf("Len() = %d, want 3", list.Len())
	}
	if got := list.Get(1).String(); got != `"1"` {
		t.Errorf("Get(1) = %q, want %q", got, `"1"`)
	}
	if list.Get(5) != nil {
		t.Errorf("Get(5) = %v, want nil", list.Get(5))
	}
	if list.IsLeaf() {
		t.Error("IsLeaf() = true for a list")
	}
	if !list.Get(0).IsLeaf() {
		t.Error("IsLeaf() = false for an atom")
	}
}
