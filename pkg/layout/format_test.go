package layout

import (
	"math"
	"testing"

	"github.com/qcdraw/qcdraw/pkg/circuit"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{math.Pi, "pi"},
		{-math.Pi, "-pi"},
		{math.Pi / 2, "pi/2"},
		{-math.Pi / 4, "-pi/4"},
		{math.Sqrt2, "sqrt(2)"},
		{1 / math.Sqrt2, "1/sqrt(2)"},
		{3.1415926, "pi"}, // within epsilon
		{0, "0"},
		{2, "2"},
		{-1, "-1"},
		{0.5, "0.5"},
		{0.05, "0.05"},
		{1.234, "1.23"},
	}
	for _, tt := range tests {
		if got := formatFloat(tt.in); got != tt.want {
			t.Errorf("formatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	if got := formatValue(circuit.Float(math.Pi / 2)); got != "pi/2" {
		t.Errorf("float value = %q", got)
	}
	if got := formatValue(circuit.Symbol("theta")); got != "theta" {
		t.Errorf("symbol value = %q", got)
	}
}

func TestFormatSymbolic(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"theta", "theta"},
		{"alpha+beta", "alpha+beta"},
		{"(theta)", "theta"},
		{"((theta))", "(theta)"},
		{"(a)*(b)", "(a)*(b)"},
		{"omega.h", `"omega.h"`},
		{"theta.alt", "theta.alt"},
		{"planck.reduce", "planck.reduce"},
		{"planck.length", `"planck.length"`},
		{"velocity", `"velocity"`},
		{"2*phi", "2*phi"},
		{"dagger+hbar", "dagger+hbar"},
	}
	for _, tt := range tests {
		if got := formatSymbolic(tt.in); got != tt.want {
			t.Errorf("formatSymbolic(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatComplex(t *testing.T) {
	if got := formatComplex(circuit.Complex{Re: 1, Im: -0.5}); got != "1+-0.5i" {
		t.Errorf("formatComplex = %q", got)
	}
}
