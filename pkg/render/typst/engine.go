package typst

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/qcdraw/qcdraw/pkg/errors"
)

// DefaultPixelsPerPoint is the raster density used when the caller does
// not override it.
const DefaultPixelsPerPoint = 3.0

// Engine compiles typst markup to PNG by shelling out to the typst
// binary. The typesetting itself is out of process: the engine only
// stages the source in a scratch directory, runs `typst compile` and
// reads the result back.
type Engine struct {
	// Binary is the typst executable, looked up on PATH when not
	// absolute. Defaults to "typst".
	Binary string
	// FontDir is passed as an extra --font-path, used for the bundled
	// math font.
	FontDir string
	// PixelsPerPoint scales the output raster.
	PixelsPerPoint float64
}

// NewEngine returns an engine with defaults filled in, or an error when
// the typst binary cannot be found.
func NewEngine(binary, fontDir string, pixelsPerPoint float64) (*Engine, error) {
	if binary == "" {
		binary = "typst"
	}
	if _, err := exec.LookPath(binary); err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err,
			"typst binary %q not found", binary)
	}
	if pixelsPerPoint <= 0 {
		pixelsPerPoint = DefaultPixelsPerPoint
	}
	return &Engine{Binary: binary, FontDir: fontDir, PixelsPerPoint: pixelsPerPoint}, nil
}

// Compile renders typst source to PNG bytes.
func (e *Engine) Compile(ctx context.Context, source string) ([]byte, error) {
	dir := filepath.Join(os.TempDir(), "qcdraw-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "creating scratch dir")
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "circuit.typ")
	out := filepath.Join(dir, "circuit.png")
	if err := os.WriteFile(in, []byte(source), 0o644); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "writing typst source")
	}

	// typst takes pixels per inch; one point is 1/72 inch.
	args := []string{"compile", "--format", "png",
		"--ppi", fmt.Sprintf("%.0f", e.PixelsPerPoint*72)}
	if e.FontDir != "" {
		args = append(args, "--font-path", e.FontDir)
	}
	args = append(args, in, out)

	cmd := exec.CommandContext(ctx, e.Binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeExternal, err,
			"typst compilation failed: %s", bytes.TrimSpace(stderr.Bytes()))
	}

	png, err := os.ReadFile(out)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeExternal, err, "reading typst output")
	}
	return png, nil
}
