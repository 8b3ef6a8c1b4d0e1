// Command automato-corpus writes or verifies the deterministic test
// oracle files pkg/corpus defines, so the same literal payload values can
// be checked for bit-compatibility across host builds and firmware test
// runs.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/openautomato/automato/pkg/corpus"
)

func main() {
	var directory string

	root := &cobra.Command{
		Use:   "automato-corpus",
		Short: "Write or verify the automato wire-format test corpus",
	}
	root.PersistentFlags().StringVar(&directory, "directory", "./corpus", "corpus directory")

	writeCmd := &cobra.Command{
		Use:   "write",
		Short: "Write every corpus literal to --directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(directory, 0o755); err != nil {
				return err
			}
			if err := corpus.WriteAll(directory); err != nil {
				return err
			}
			color.Green("wrote %d corpus files to %s", len(corpus.Literals), directory)
			return nil
		},
	}

	readCmd := &cobra.Command{
		Use:   "read",
		Short: "Verify every corpus literal against --directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			errs := corpus.VerifyAll(directory)
			if len(errs) == 0 {
				color.Green("all %d corpus files verified", len(corpus.Literals))
				return nil
			}
			for _, err := range errs {
				color.Red("%v", err)
			}
			return fmt.Errorf("%d corpus mismatches", len(errs))
		},
	}

	root.AddCommand(writeCmd, readCmd)
	if err := root.Execute(); err != nil {
		color.Red("automato-corpus: %v", err)
		os.Exit(1)
	}
}
