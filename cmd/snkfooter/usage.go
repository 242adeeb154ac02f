package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// usageError marks a bad invocation: wrong argument count or an invalid
// mode token. No file is touched when one is returned.
type usageError struct {
	err error
}

func (e usageError) Error() string {
	return e.err.Error()
}

func (e usageError) Unwrap() error {
	return e.err
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usageError{err: fmt.Errorf("usage: %s", cmd.UseLine())}
		}
		return nil
	}
}
