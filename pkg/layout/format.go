package layout

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/qcdraw/qcdraw/pkg/circuit"
)

const epsilon = 1e-6

// Well-known constants rendered symbolically instead of as decimals.
var namedConstants = []struct {
	value float64
	text  string
}{
	{math.Pi, "pi"},
	{-math.Pi, "-pi"},
	{math.Pi / 2, "pi/2"},
	{-math.Pi / 2, "-pi/2"},
	{math.Pi / 4, "pi/4"},
	{-math.Pi / 4, "-pi/4"},
	{math.Sqrt2, "sqrt(2)"},
	{-math.Sqrt2, "-sqrt(2)"},
	{1 / math.Sqrt2, "1/sqrt(2)"},
	{-1 / math.Sqrt2, "-1/sqrt(2)"},
}

// formatFloat renders a parameter for typst math: named constants within
// epsilon keep their symbolic form, everything else uses the fewest
// decimals (up to two) that fit.
func formatFloat(v float64) string {
	for _, c := range namedConstants {
		if math.Abs(v-c.value) < epsilon {
			return c.text
		}
	}
	switch {
	case v == math.Trunc(v):
		return fmt.Sprintf("%.0f", v)
	case v*10 == math.Trunc(v*10):
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

func formatValue(v circuit.Value) string {
	if f, ok := v.Float(); ok {
		return formatFloat(f)
	}
	s, _ := v.Symbol()
	return formatSymbolic(s)
}

var identRe = regexp.MustCompile(`[a-zA-Z][\w.]+`)

// formatSymbolic renders a symbolic parameter expression. A redundant
// outer pair of parentheses is stripped, and every identifier that is not
// a known typst math symbol is quoted so typst treats it as text.
func formatSymbolic(expr string) string {
	value := expr
	if strings.HasPrefix(value, "(") && strings.HasSuffix(value, ")") && outerParensBalanced(value) {
		value = value[1 : len(value)-1]
	}
	return identRe.ReplaceAllStringFunc(value, formatSymbolName)
}

// outerParensBalanced reports whether the leading "(" closes only at the
// very end of the string, i.e. the outer pair wraps the whole expression.
func outerParensBalanced(s string) bool {
	depth := 1
	for _, c := range s[1 : len(s)-1] {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			return false
		}
	}
	return depth != 0
}

// typstSymbols lists the math symbol names (and their accepted variants)
// that typst resolves without quoting.
var typstSymbols = map[string][]string{
	"alpha": nil, "beta": nil, "gamma": nil, "delta": nil,
	"epsilon": {"alt"}, "zeta": nil, "eta": nil, "theta": {"alt"},
	"iota": nil, "kappa": {"alt"}, "lambda": nil, "mu": nil,
	"nu": nil, "xi": nil, "omicron": nil, "pi": {"alt"},
	"rho": {"alt"}, "sigma": {"alt"}, "tau": nil, "upsilon": nil,
	"phi": {"alt"}, "chi": nil, "psi": nil, "omega": nil,
	"Alpha": nil, "Beta": nil, "Gamma": nil, "Delta": nil,
	"Epsilon": nil, "Zeta": nil, "Eta": nil, "Theta": nil,
	"Iota": nil, "Kappa": nil, "Lambda": nil, "Mu": nil,
	"Nu": nil, "Xi": nil, "Omicron": nil, "Pi": nil,
	"Rho": nil, "Sigma": nil, "Tau": nil, "Upsilon": nil,
	"Phi": nil, "Chi": nil, "Psi": nil, "Omega": nil,
	"infinity": nil, "dagger": nil, "hbar": nil, "nothing": nil,
	"planck": {"reduce"},
}

func formatSymbolName(name string) string {
	base, variant, _ := strings.Cut(name, ".")
	variants, ok := typstSymbols[base]
	if ok {
		if variant == "" {
			return name
		}
		for _, v := range variants {
			if v == variant {
				return name
			}
		}
	}
	return `"` + name + `"`
}

func formatComplex(c circuit.Complex) string {
	return fmt.Sprintf("%s+%si", formatFloat(c.Re), formatFloat(c.Im))
}

// qubitInput renders one entry of a multi-qubit gate's inputs list.
func qubitInput(offset int, label string) string {
	return fmt.Sprintf("%d, label: %q", offset, label)
}
