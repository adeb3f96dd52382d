package format

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSymbolsFor(t *testing.T) {
	cases := []struct {
		sep  Separator
		want Symbols
	}{
		{sep: SeparatorSpace, want: Symbols{Grouping: " ", Fractional: "."}},
		{sep: SeparatorPeriod, want: Symbols{Grouping: ".", Fractional: ","}},
		{sep: SeparatorComma, want: Symbols{Grouping: ",", Fractional: "."}},
		{sep: Separator(42), want: Symbols{Grouping: " ", Fractional: "."}},
	}

	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, SymbolsFor(tc.sep)); diff != "" {
			t.Fatalf("SymbolsFor(%v) mismatch (-want +got):\n%s", tc.sep, diff)
		}
	}
}

func TestParseSeparator(t *testing.T) {
	cases := []struct {
		in      string
		want    Separator
		wantErr bool
	}{
		{in: "space", want: SeparatorSpace},
		{in: "", want: SeparatorSpace},
		{in: "Period", want: SeparatorPeriod},
		{in: "dot", want: SeparatorPeriod},
		{in: " comma ", want: SeparatorComma},
		{in: "tab", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseSeparator(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownSeparator) {
				t.Fatalf("ParseSeparator(%q): got err %v, want ErrUnknownSeparator", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseSeparator(%q): unexpected err %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseSeparator(%q): got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSeparator_TextRoundTrip(t *testing.T) {
	for _, sep := range []Separator{SeparatorSpace, SeparatorPeriod, SeparatorComma} {
		b, err := sep.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", sep, err)
		}
		var got Separator
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", b, err)
		}
		if got != sep {
			t.Fatalf("round trip: got %v, want %v", got, sep)
		}
	}

	if _, err := Separator(9).MarshalText(); !errors.Is(err, ErrUnknownSeparator) {
		t.Fatalf("MarshalText(9): got err %v, want ErrUnknownSeparator", err)
	}
}

func TestFormat(t *testing.T) {
	comma := SymbolsFor(SeparatorComma)
	period := SymbolsFor(SeparatorPeriod)
	space := SymbolsFor(SeparatorSpace)

	cases := []struct {
		expr string
		sym  Symbols
		want string
	}{
		{expr: "", sym: comma, want: ""},
		{expr: "123", sym: comma, want: "123"},
		{expr: "1234", sym: comma, want: "1,234"},
		{expr: "1234567.891", sym: comma, want: "1,234,567.891"},
		{expr: "1234567.891", sym: period, want: "1.234.567,891"},
		{expr: "1234567.891", sym: space, want: "1 234 567.891"},
		{expr: "123456+cos(7890)", sym: comma, want: "123,456+cos(7,890)"},
		{expr: ".5", sym: period, want: ",5"},
		{expr: "1000.", sym: comma, want: "1,000."},
		{expr: "1.2.3", sym: period, want: "1,2,3"},
		{expr: "π×2", sym: comma, want: "π×2"},
		{expr: "1234", sym: Symbols{}, want: "1234"},
	}

	for _, tc := range cases {
		if got := Format(tc.expr, tc.sym); got != tc.want {
			t.Fatalf("Format(%q, %+v): got %q, want %q", tc.expr, tc.sym, got, tc.want)
		}
	}
}

func TestClean(t *testing.T) {
	cases := []struct {
		text string
		sym  Symbols
		want string
	}{
		{text: "1,234,567.891", sym: SymbolsFor(SeparatorComma), want: "1234567.891"},
		{text: "1.234.567,891", sym: SymbolsFor(SeparatorPeriod), want: "1234567.891"},
		{text: "1 234 567.891", sym: SymbolsFor(SeparatorSpace), want: "1234567.891"},
		{text: "12,345+cos(1,000)", sym: SymbolsFor(SeparatorComma), want: "12345+cos(1000)"},
	}

	for _, tc := range cases {
		if got := Clean(tc.text, tc.sym); got != tc.want {
			t.Fatalf("Clean(%q): got %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestFormatThenClean_RestoresExpression(t *testing.T) {
	exprs := []string{"1234567.891", "12+34567÷8.5", "sin(90000)×π", "0.000001"}
	for _, sep := range []Separator{SeparatorSpace, SeparatorPeriod, SeparatorComma} {
		sym := SymbolsFor(sep)
		for _, expr := range exprs {
			if got := Clean(Format(expr, sym), sym); got != expr {
				t.Fatalf("%v: Clean(Format(%q)): got %q", sep, expr, got)
			}
		}
	}
}

func TestDisplay(t *testing.T) {
	if got, want := Display("1.5", SymbolsFor(SeparatorPeriod)), "1,5"; got != want {
		t.Fatalf("Display period: got %q, want %q", got, want)
	}
	if got, want := Display("1.5", SymbolsFor(SeparatorComma)), "1.5"; got != want {
		t.Fatalf("Display comma: got %q, want %q", got, want)
	}
}
