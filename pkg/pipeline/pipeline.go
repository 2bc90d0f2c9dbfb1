// Package pipeline provides the core rendering pipeline for qcdraw.
//
// This package implements the complete simplify → layout → markup → compile
// pipeline that is shared by the CLI and the render server. By centralizing
// this logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Simplify: Optionally cancel adjacent self-inverse gate pairs
//  2. Layout: Place every operation on column-aligned qubit, boson, and
//     classical tracks
//  3. Markup: Serialize the aligned tracks into typst quill markup
//  4. Compile: Invoke the external typst binary to produce a PNG image
//
// The markup stage can be run on its own when only the typst source is
// wanted, which also skips the typst binary and font requirements.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    RenderPragmas: "all",
//	    InitMode:      "state",
//	    Format:        "png",
//	}
//	result, err := runner.Execute(ctx, circ, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Image
//
// Generate markup only:
//
//	markup, err := runner.Markup(ctx, circ, opts)
package pipeline

import (
	"github.com/charmbracelet/log"

	qerrors "github.com/qcdraw/qcdraw/pkg/errors"
	"github.com/qcdraw/qcdraw/pkg/render/typst"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultRenderPragmas renders every pragma operation in the diagram.
	DefaultRenderPragmas = "all"

	// DefaultInitMode labels wires with their initial state |0>.
	DefaultInitMode = "state"

	// DefaultPixelsPerPoint is the rasterization density for PNG output.
	DefaultPixelsPerPoint = 3.0
)

// Format constants for output formats.
const (
	FormatPNG = "png"
	FormatTyp = "typ"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG: true,
	FormatTyp: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the rendering pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// RenderPragmas selects which pragma operations appear in the diagram:
	// "all", "none", or a comma-separated list of pragma names.
	RenderPragmas string `json:"render_pragmas,omitempty"`

	// InitMode controls wire labels: "state" for |0>, "qubit" for q[i].
	InitMode string `json:"init_mode,omitempty"`

	// Simplify cancels adjacent self-inverse two-qubit gate pairs before layout.
	Simplify bool `json:"simplify,omitempty"`

	// Format is the output format: "png" or "typ".
	Format string `json:"format,omitempty"`

	// PixelsPerPoint is the PNG rasterization density.
	PixelsPerPoint float64 `json:"pixels_per_point,omitempty"`

	// Refresh bypasses the cache and recomputes all stages.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger  *log.Logger   `json:"-"`
	Engine  *typst.Engine `json:"-"`
	FontDir string        `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults fills in default values and validates the options.
// Calling it more than once is a no-op.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.RenderPragmas == "" {
		o.RenderPragmas = DefaultRenderPragmas
	}
	if o.InitMode == "" {
		o.InitMode = DefaultInitMode
	}
	if o.Format == "" {
		o.Format = FormatPNG
	}
	if o.PixelsPerPoint == 0 {
		o.PixelsPerPoint = DefaultPixelsPerPoint
	}
	if !ValidFormats[o.Format] {
		return qerrors.New(qerrors.ErrCodeInvalidInput, "unsupported format: %s", o.Format)
	}
	if _, err := typst.ParseInitMode(o.InitMode); err != nil {
		return err
	}
	if o.PixelsPerPoint <= 0 {
		return qerrors.New(qerrors.ErrCodeInvalidInput,
			"pixels per point must be positive, got %g", o.PixelsPerPoint)
	}
	o.validated = true
	return nil
}
