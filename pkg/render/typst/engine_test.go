package typst

import (
	"testing"

	"github.com/qcdraw/qcdraw/pkg/errors"
)

func TestNewEngineMissingBinary(t *testing.T) {
	_, err := NewEngine("definitely-not-a-typst-binary", "", 0)
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

func TestNewEngineDefaults(t *testing.T) {
	// Any binary on PATH will do for the lookup.
	e, err := NewEngine("sh", "/tmp/fonts", 0)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if e.Binary != "sh" || e.FontDir != "/tmp/fonts" {
		t.Errorf("engine = %+v", e)
	}
	if e.PixelsPerPoint != DefaultPixelsPerPoint {
		t.Errorf("PixelsPerPoint = %v, want default", e.PixelsPerPoint)
	}
}
