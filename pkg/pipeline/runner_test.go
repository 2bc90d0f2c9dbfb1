package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/qcdraw/qcdraw/pkg/cache"
	"github.com/qcdraw/qcdraw/pkg/circuit"
	qerrors "github.com/qcdraw/qcdraw/pkg/errors"
)

func bellCircuit() *circuit.Circuit {
	return circuit.Of(
		circuit.Hadamard{Qubit: 0},
		circuit.CNOT{Control: 0, Target: 1},
	)
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.RenderPragmas != DefaultRenderPragmas {
		t.Errorf("RenderPragmas = %q", opts.RenderPragmas)
	}
	if opts.InitMode != DefaultInitMode {
		t.Errorf("InitMode = %q", opts.InitMode)
	}
	if opts.Format != FormatPNG {
		t.Errorf("Format = %q", opts.Format)
	}
	if opts.PixelsPerPoint != DefaultPixelsPerPoint {
		t.Errorf("PixelsPerPoint = %v", opts.PixelsPerPoint)
	}
}

func TestOptionsInvalidFormat(t *testing.T) {
	opts := Options{Format: "pdf"}
	err := opts.ValidateAndSetDefaults()
	if !qerrors.Is(err, qerrors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestOptionsInvalidInitMode(t *testing.T) {
	opts := Options{InitMode: "vacuum"}
	err := opts.ValidateAndSetDefaults()
	if !qerrors.Is(err, qerrors.ErrCodeInvalidMode) {
		t.Errorf("err = %v, want INVALID_MODE", err)
	}
}

func TestMarkupProducesQuillSource(t *testing.T) {
	r := NewRunner(nil, nil, nil)

	markup, err := r.Markup(context.Background(), bellCircuit(), Options{})
	if err != nil {
		t.Fatalf("Markup: %v", err)
	}
	if !strings.Contains(markup, "quantum-circuit(") {
		t.Errorf("markup missing quill call:\n%s", markup)
	}
	if !strings.Contains(markup, "$ H $") || !strings.Contains(markup, "ctrl(1)") {
		t.Errorf("markup missing gate cells:\n%s", markup)
	}
}

func TestExecuteTypFormatSkipsCompile(t *testing.T) {
	r := NewRunner(nil, nil, nil)

	res, err := r.Execute(context.Background(), bellCircuit(), Options{Format: FormatTyp})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Image != nil {
		t.Error("typ format must not produce an image")
	}
	if res.Markup == "" {
		t.Error("markup missing")
	}
	if res.CircuitHash == "" || len(res.CircuitHash) != 64 {
		t.Errorf("CircuitHash = %q", res.CircuitHash)
	}
	if res.Stats.OperationCount != 2 {
		t.Errorf("OperationCount = %d", res.Stats.OperationCount)
	}
}

func TestExecuteMarkupCacheHit(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil, nil)
	opts := Options{Format: FormatTyp}

	first, err := r.Execute(context.Background(), bellCircuit(), opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.MarkupHit {
		t.Error("first run should miss")
	}

	second, err := r.Execute(context.Background(), bellCircuit(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.MarkupHit {
		t.Error("second run should hit")
	}
	if second.Markup != first.Markup {
		t.Error("cached markup differs")
	}
}

func TestExecuteRefreshBypassesCache(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil, nil)

	if _, err := r.Execute(context.Background(), bellCircuit(), Options{Format: FormatTyp}); err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	res, err := r.Execute(context.Background(), bellCircuit(), Options{Format: FormatTyp, Refresh: true})
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if res.CacheInfo.MarkupHit {
		t.Error("refresh must recompute")
	}
}

func TestExecuteSimplifyChangesKeyAndOutput(t *testing.T) {
	c := circuit.Of(
		circuit.Hadamard{Qubit: 0},
		circuit.CNOT{Control: 0, Target: 1},
		circuit.CNOT{Control: 0, Target: 1},
	)
	r := NewRunner(nil, nil, nil)

	plain, err := r.Markup(context.Background(), c, Options{})
	if err != nil {
		t.Fatalf("Markup: %v", err)
	}
	simplified, err := r.Markup(context.Background(), c, Options{Simplify: true})
	if err != nil {
		t.Fatalf("Markup simplified: %v", err)
	}
	if strings.Contains(simplified, "ctrl(1)") {
		t.Errorf("cancelled pair still present:\n%s", simplified)
	}
	if plain == simplified {
		t.Error("simplify had no effect")
	}
}

func TestExecuteEmptyCircuit(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, err := r.Execute(context.Background(), circuit.New(), Options{Format: FormatTyp})
	if !qerrors.Is(err, qerrors.ErrCodeEmptyPage) {
		t.Errorf("err = %v, want EMPTY_PAGE", err)
	}
}

func TestCircuitHashStability(t *testing.T) {
	h1, err := circuitHash(bellCircuit())
	if err != nil {
		t.Fatal(err)
	}
	h2, err := circuitHash(bellCircuit())
	if err != nil {
		t.Fatal(err)
	}
	if h1 != h2 {
		t.Error("hash not stable across equal circuits")
	}

	h3, err := circuitHash(circuit.Of(circuit.Hadamard{Qubit: 1}))
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h3 {
		t.Error("different circuits share a hash")
	}
}
