package token

import (
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestFuncsWithBracket_OrderAndShape(t *testing.T) {
	want := []string{"sin⁻¹(", "cos⁻¹(", "tan⁻¹(", "sin(", "cos(", "tan(", "exp(", "log(", "ln("}
	if diff := cmp.Diff(want, FuncsWithBracket()); diff != "" {
		t.Fatalf("FuncsWithBracket mismatch (-want +got):\n%s", diff)
	}

	list := FuncsWithBracket()
	for i := 1; i < len(list); i++ {
		prev := utf8.RuneCountInString(list[i-1])
		cur := utf8.RuneCountInString(list[i])
		if cur > prev {
			t.Fatalf("token %q (%d runes) ordered after shorter %q (%d runes)", list[i], cur, list[i-1], prev)
		}
	}
}

func TestFuncsWithBracket_ReturnsCopy(t *testing.T) {
	list := FuncsWithBracket()
	list[0] = "mutated"
	if got := FuncsWithBracket()[0]; got != "sin⁻¹(" {
		t.Fatalf("vocabulary mutated through returned slice: got %q", got)
	}
}

func TestClassification(t *testing.T) {
	cases := []struct {
		tok      string
		digit    bool
		operator bool
		constant bool
		fn       bool
	}{
		{tok: "7", digit: true},
		{tok: ".", digit: true},
		{tok: "×", operator: true},
		{tok: "−", operator: true},
		{tok: "π", constant: true},
		{tok: "cos", fn: true},
		{tok: "cos(", fn: true},
		{tok: "sin⁻¹(", fn: true},
		{tok: "x"},
		{tok: "77"},
	}

	for _, tc := range cases {
		if got := IsDigit(tc.tok); got != tc.digit {
			t.Fatalf("IsDigit(%q): got %v, want %v", tc.tok, got, tc.digit)
		}
		if got := IsOperator(tc.tok); got != tc.operator {
			t.Fatalf("IsOperator(%q): got %v, want %v", tc.tok, got, tc.operator)
		}
		if got := IsConstant(tc.tok); got != tc.constant {
			t.Fatalf("IsConstant(%q): got %v, want %v", tc.tok, got, tc.constant)
		}
		if got := IsFunc(tc.tok); got != tc.fn {
			t.Fatalf("IsFunc(%q): got %v, want %v", tc.tok, got, tc.fn)
		}
		known := tc.digit || tc.operator || tc.constant || tc.fn
		if got := IsKnown(tc.tok); got != known {
			t.Fatalf("IsKnown(%q): got %v, want %v", tc.tok, got, known)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "2*3", want: "2×3"},
		{in: "8/4-1", want: "8÷4−1"},
		{in: "sqrt(2)", want: "√(2)"},
		{in: "2pi", want: "2π"},
		{in: "asin(1)", want: "sin⁻¹(1)"},
		{in: "sin(1)", want: "sin(1)"},
		{in: "1+2", want: "1+2"},
	}

	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}
