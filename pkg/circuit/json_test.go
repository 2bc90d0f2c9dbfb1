package circuit

import (
	"encoding/json"
	"strings"
	"testing"

	qerrors "github.com/qcdraw/qcdraw/pkg/errors"
)

func TestCircuitJSONRoundTrip(t *testing.T) {
	c := Of(
		DefinitionBit{Register: "ro", Length: 2, IsOutput: true},
		Hadamard{Qubit: 0},
		RotateX{Qubit: 1, Theta: Symbol("theta")},
		CNOT{Control: 0, Target: 1},
		QuantumRabi{Qubit: 0, Mode: 0, Theta: Float(0.5)},
		MeasureQubit{Qubit: 0, Readout: "ro", ReadoutIndex: 0},
		PragmaLoop{
			Repetitions: Float(3),
			Circuit:     Of(PauliX{Qubit: 0}),
		},
		PragmaAnnotatedOp{
			Operation:  PauliZ{Qubit: 1},
			Annotation: "flip parity",
		},
	)

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var got Circuit
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !c.Equal(&got) {
		t.Errorf("round trip changed circuit:\n in: %#v\nout: %#v", c.Operations, got.Operations)
	}
}

func TestCircuitJSONEnvelope(t *testing.T) {
	data, err := json.Marshal(Of(Hadamard{Qubit: 2}))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if !strings.Contains(string(data), `"op":"Hadamard"`) {
		t.Errorf("missing op envelope key: %s", data)
	}
	if !strings.Contains(string(data), `"Qubit":2`) {
		t.Errorf("missing operation field: %s", data)
	}
}

func TestCircuitJSONUnknownOperation(t *testing.T) {
	var c Circuit
	err := json.Unmarshal([]byte(`{"operations":[{"op":"Frobnicate"}]}`), &c)
	if err == nil {
		t.Fatal("expected error for unknown operation")
	}
	if !qerrors.Is(err, qerrors.ErrCodeUnsupportedOperation) {
		t.Errorf("error code = %v, want UNSUPPORTED_OPERATION", qerrors.GetCode(err))
	}
}

func TestValueJSON(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want string
	}{
		{"float", Float(1.5), "1.5"},
		{"symbol", Symbol("theta"), `"theta"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal = %s, want %s", data, tt.want)
			}
			var back Value
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}
			if back != tt.in {
				t.Errorf("round trip = %#v, want %#v", back, tt.in)
			}
		})
	}
}
