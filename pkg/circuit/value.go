package circuit

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is a gate parameter: either a concrete float or a symbolic
// expression of free parameters (e.g. "theta/2"). Symbolic values appear
// in circuits that have not been bound to concrete angles yet; the layout
// engine renders them verbatim as math text.
type Value struct {
	num float64
	sym string
	set valueKind
}

type valueKind int

const (
	valueFloat valueKind = iota
	valueSymbol
)

// Float creates a numeric parameter value.
func Float(v float64) Value { return Value{num: v, set: valueFloat} }

// Symbol creates a symbolic parameter value.
func Symbol(s string) Value { return Value{sym: s, set: valueSymbol} }

// Float returns the numeric value and whether the value is numeric.
func (v Value) Float() (float64, bool) { return v.num, v.set == valueFloat }

// Symbol returns the symbolic expression and whether the value is symbolic.
func (v Value) Symbol() (string, bool) { return v.sym, v.set == valueSymbol }

// String returns a plain representation, mainly for error messages.
func (v Value) String() string {
	if v.set == valueSymbol {
		return v.sym
	}
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}

// MarshalJSON encodes numeric values as JSON numbers and symbolic values
// as JSON strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.set == valueSymbol {
		return json.Marshal(v.sym)
	}
	return json.Marshal(v.num)
}

// UnmarshalJSON accepts a JSON number or string.
func (v *Value) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*v = Float(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Symbol(s)
		return nil
	}
	return fmt.Errorf("value must be a number or a string: %s", data)
}
