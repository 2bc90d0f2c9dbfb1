package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/qcdraw/qcdraw/pkg/cache"
	"github.com/qcdraw/qcdraw/pkg/circuit"
	"github.com/qcdraw/qcdraw/pkg/circuit/simplify"
	"github.com/qcdraw/qcdraw/pkg/layout"
	"github.com/qcdraw/qcdraw/pkg/render/typst"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// CircuitHash is the content hash of the input circuit.
	CircuitHash string

	// Markup is the generated typst source.
	Markup string

	// Image is the rendered PNG. Empty when the format is "typ".
	Image []byte

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	OperationCount int
	LayoutTime     time.Duration
	CompileTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	MarkupHit bool
	ImageHit  bool
}

// Execute runs the complete simplify → layout → markup → compile pipeline
// with caching.
func (r *Runner) Execute(ctx context.Context, c *circuit.Circuit, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{}

	hash, err := circuitHash(c)
	if err != nil {
		return nil, err
	}
	result.CircuitHash = hash

	layoutStart := time.Now()
	markup, markupHit, err := r.markupWithCacheInfo(ctx, c, hash, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Markup = markup
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.OperationCount = c.Len()
	result.CacheInfo.MarkupHit = markupHit

	opts.Logger.Info("generated markup",
		"operations", c.Len(),
		"cached", markupHit,
		"duration", result.Stats.LayoutTime)

	if opts.Format == FormatTyp {
		return result, nil
	}

	compileStart := time.Now()
	image, imageHit, err := r.compileWithCacheInfo(ctx, markup, hash, opts)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	result.Image = image
	result.Stats.CompileTime = time.Since(compileStart)
	result.CacheInfo.ImageHit = imageHit

	opts.Logger.Info("compiled image",
		"bytes", len(image),
		"cached", imageHit,
		"duration", result.Stats.CompileTime)

	return result, nil
}

// Markup generates the typst source for a circuit without compiling it.
func (r *Runner) Markup(ctx context.Context, c *circuit.Circuit, opts Options) (string, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return "", fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	hash, err := circuitHash(c)
	if err != nil {
		return "", err
	}
	markup, _, err := r.markupWithCacheInfo(ctx, c, hash, opts)
	return markup, err
}

func (r *Runner) markupWithCacheInfo(ctx context.Context, c *circuit.Circuit, hash string, opts Options) (string, bool, error) {
	key := r.Keyer.MarkupKey(hash, cache.MarkupKeyOpts{
		Pragmas:  opts.RenderPragmas,
		InitMode: opts.InitMode,
		Simplify: opts.Simplify,
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			return string(data), true, nil
		}
	}

	work := c
	if opts.Simplify {
		work = simplify.Run(c)
	}

	res, err := layout.Arrange(work, layout.ParseRenderPragmas(opts.RenderPragmas))
	if err != nil {
		return "", false, err
	}

	mode, err := typst.ParseInitMode(opts.InitMode)
	if err != nil {
		return "", false, err
	}
	markup := typst.Markup(res, mode)

	_ = r.Cache.Set(ctx, key, []byte(markup), cache.TTLMarkup)
	return markup, false, nil
}

func (r *Runner) compileWithCacheInfo(ctx context.Context, markup, hash string, opts Options) ([]byte, bool, error) {
	key := r.Keyer.ArtifactKey(hash, cache.ArtifactKeyOpts{
		Pragmas:        opts.RenderPragmas,
		InitMode:       opts.InitMode,
		Simplify:       opts.Simplify,
		PixelsPerPoint: opts.PixelsPerPoint,
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			return data, true, nil
		}
	}

	engine := opts.Engine
	if engine == nil {
		var err error
		engine, err = typst.NewEngine("", opts.FontDir, opts.PixelsPerPoint)
		if err != nil {
			return nil, false, err
		}
	}

	image, err := engine.Compile(ctx, markup)
	if err != nil {
		return nil, false, err
	}

	_ = r.Cache.Set(ctx, key, image, cache.TTLArtifact)
	return image, false, nil
}

// applyLogger ensures opts carries a usable logger.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// circuitHash computes the content hash of a circuit from its JSON form.
func circuitHash(c *circuit.Circuit) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}
