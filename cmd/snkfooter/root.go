package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"snkfooter/internal/footer"
	"snkfooter/internal/patcher"
)

func newRootCommand() *cobra.Command {
	var flags globalFlags
	var dryRun bool

	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:           "snkfooter <svg_file> <light|dark>",
		Short:         "Append the genesis block hex dump footer to a snake SVG",
		Args:          exactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatch(cmd, ctx, args[0], args[1], dryRun)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format (console, json)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the patched SVG instead of writing it")

	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func runPatch(cmd *cobra.Command, ctx *commandContext, path, modeArg string, dryRun bool) error {
	mode, err := footer.ParseMode(modeArg)
	if err != nil {
		return usageError{err: err}
	}

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.logger()
	if err != nil {
		return err
	}

	result, err := patcher.ApplyFile(path, mode, patcher.Options{
		FallbackDurationMS: cfg.Footer.FallbackDurationMS,
		DryRun:             dryRun,
		Lock:               cfg.Footer.Lock,
		Logger:             logger,
	})
	if err != nil {
		if errors.Is(err, patcher.ErrNotFound) {
			return err
		}
		return fmt.Errorf("processing SVG: %w", err)
	}

	out := cmd.OutOrStdout()
	switch {
	case result.Skipped:
		fmt.Fprintf(out, "Genesis block already exists in %s, skipping\n", path)
	case dryRun:
		fmt.Fprint(out, result.Content)
	default:
		fmt.Fprintln(out, result.Summary())
	}
	return nil
}
