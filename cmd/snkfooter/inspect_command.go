package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"snkfooter/internal/patcher"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <svg_file>",
		Short: "Show the anchors and footer layout without modifying the SVG",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("%w: %s", patcher.ErrNotFound, path)
				}
				return fmt.Errorf("read SVG: %w", err)
			}

			result, err := patcher.Inspect(string(data), patcher.Options{
				FallbackDurationMS: cfg.Footer.FallbackDurationMS,
			})
			if err != nil {
				return fmt.Errorf("processing SVG: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Anchor", "Value"},
				inspectRows(result),
				[]columnAlignment{alignLeft, alignRight},
				shouldColorize(out),
			))
			return nil
		},
	}
}

func inspectRows(r patcher.Result) [][]string {
	vb := r.ViewBox
	grid := "not found (x=0)"
	if r.GridFound {
		grid = fmt.Sprintf("%d..%d (%dpx)", r.Grid.Left, r.Grid.Right, r.Grid.Width())
	}
	source := "fallback"
	if r.DurationFound {
		source = "document"
	}
	l := r.Layout
	return [][]string{
		{"viewBox", fmt.Sprintf("%g %g %g %g", vb.MinX, vb.MinY, vb.Width, vb.Height)},
		{"Grid bounds", grid},
		{"Animation duration", fmt.Sprintf("%dms (%s)", r.DurationMS, source)},
		{"Footer height", fmt.Sprintf("%d", l.FooterHeight)},
		{"New height", fmt.Sprintf("%g", l.NewHeight)},
		{"First baseline", fmt.Sprintf("%d", l.RowY(0))},
		{"Column x", fmt.Sprintf("%d / %d / %d", l.AddressX, l.HexX, l.ASCIIX)},
		{"Footer present", yesNo(r.Skipped)},
	}
}
