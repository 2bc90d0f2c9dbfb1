package circuit

// Classical register operations.

// MeasureQubit measures a qubit into a bit register.
type MeasureQubit struct {
	Qubit        int
	Readout      string
	ReadoutIndex int
}

func (MeasureQubit) Name() string            { return "MeasureQubit" }
func (g MeasureQubit) Involved() Involvement { return Involve(g.Qubit) }

// DefinitionBit declares a classical bit register.
type DefinitionBit struct {
	Register string
	Length   int
	IsOutput bool
}

func (DefinitionBit) Name() string          { return "DefinitionBit" }
func (DefinitionBit) Involved() Involvement { return InvolveNone() }

// DefinitionFloat declares a classical float register. It never appears
// in the diagram.
type DefinitionFloat struct {
	Register string
	Length   int
	IsOutput bool
}

func (DefinitionFloat) Name() string          { return "DefinitionFloat" }
func (DefinitionFloat) Involved() Involvement { return InvolveNone() }

// DefinitionComplex declares a classical complex register. It never
// appears in the diagram.
type DefinitionComplex struct {
	Register string
	Length   int
	IsOutput bool
}

func (DefinitionComplex) Name() string          { return "DefinitionComplex" }
func (DefinitionComplex) Involved() Involvement { return InvolveNone() }

// DefinitionUsize declares a classical integer register. It never
// appears in the diagram.
type DefinitionUsize struct {
	Register string
	Length   int
	IsOutput bool
}

func (DefinitionUsize) Name() string          { return "DefinitionUsize" }
func (DefinitionUsize) Involved() Involvement { return InvolveNone() }

// InputBit writes a constant value into a bit register at runtime.
type InputBit struct {
	Register string
	Index    int
	Value    bool
}

func (InputBit) Name() string          { return "InputBit" }
func (InputBit) Involved() Involvement { return InvolveNone() }
