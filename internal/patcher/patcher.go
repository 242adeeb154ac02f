package patcher

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"snkfooter/internal/footer"
	"snkfooter/internal/logging"
	"snkfooter/internal/svgdoc"
)

// Options tunes a patch run. The zero value is usable.
type Options struct {
	// FallbackDurationMS replaces svgdoc.FallbackDurationMS when positive.
	FallbackDurationMS int
	// DryRun computes the patched document without writing it.
	DryRun bool
	// Lock holds <path>.lock during ApplyFile.
	Lock   bool
	RunID  string
	Logger *slog.Logger
}

func (o Options) fallbackDuration() int {
	if o.FallbackDurationMS > 0 {
		return o.FallbackDurationMS
	}
	return svgdoc.FallbackDurationMS
}

// Result describes what a patch run found and did.
type Result struct {
	RunID string
	Path  string
	Mode  footer.Mode
	// Skipped is set when the document already carried the footer.
	Skipped bool

	ViewBox       svgdoc.ViewBox
	Grid          svgdoc.GridBounds
	GridFound     bool
	DurationMS    int
	DurationFound bool
	Layout        footer.Layout

	RootHeightUpdated bool
	// Content holds the patched document for dry runs.
	Content string
}

// Inspect extracts the anchors of doc and computes the footer layout without
// changing anything.
func Inspect(doc string, opts Options) (Result, error) {
	result := Result{RunID: opts.RunID, Skipped: footer.HasMarker(doc)}

	vb, err := svgdoc.ParseViewBox(doc)
	if err != nil {
		return result, err
	}
	result.ViewBox = vb

	var grid *svgdoc.GridBounds
	if bounds, ok := svgdoc.FindGridBounds(doc); ok {
		result.Grid = bounds
		result.GridFound = true
		grid = &bounds
	}

	result.DurationMS, result.DurationFound = svgdoc.FindAnimationDuration(doc)
	if !result.DurationFound {
		result.DurationMS = opts.fallbackDuration()
	}

	result.Layout = footer.ComputeLayout(vb, grid)
	return result, nil
}

// Apply returns doc with the footer appended and its height grown to fit. A
// document that already carries the footer is returned unchanged with
// Result.Skipped set.
func Apply(doc string, mode footer.Mode, opts Options) (string, Result, error) {
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}
	logger := logging.NewComponentLogger(opts.Logger, "patcher").With(
		logging.String(logging.FieldRunID, opts.RunID),
		logging.String("mode", mode.String()),
	)

	if footer.HasMarker(doc) {
		logger.Info("footer already present")
		return doc, Result{RunID: opts.RunID, Mode: mode, Skipped: true}, nil
	}

	result, err := Inspect(doc, opts)
	if err != nil {
		return doc, result, err
	}
	result.Mode = mode

	if !result.GridFound {
		logger.Warn("no grid cells found; aligning footer to x=0")
	}
	if !result.DurationFound {
		logger.Warn("no snake animation duration found; using fallback",
			logging.Int("duration_ms", result.DurationMS))
	}

	fragment, err := footer.Generate(result.Layout, result.DurationMS)
	if err != nil {
		return doc, result, err
	}

	newHeight := int(result.Layout.NewHeight)
	patched, err := svgdoc.SetViewBoxHeight(doc, newHeight)
	if err != nil {
		return doc, result, err
	}
	patched, result.RootHeightUpdated = svgdoc.SetRootHeight(patched, newHeight)
	if !result.RootHeightUpdated {
		logger.Warn("root svg element has no height attribute; only viewBox was resized")
	}
	patched, err = svgdoc.InsertBeforeClose(patched, fragment)
	if err != nil {
		return doc, result, err
	}

	logger.Debug("footer rendered",
		logging.Float64("original_height", result.Layout.OriginalHeight),
		logging.Int("new_height", newHeight),
		logging.Int("start_x", result.Layout.StartX),
		logging.Int("duration_ms", result.DurationMS),
	)
	return patched, result, nil
}

// Summary is the two-line report printed after a successful patch.
func (r Result) Summary() string {
	return fmt.Sprintf("Added genesis block footer to %s (%s mode)\n  Original height: %g, New height: %g",
		r.Path, r.Mode, r.Layout.OriginalHeight, r.Layout.NewHeight)
}
