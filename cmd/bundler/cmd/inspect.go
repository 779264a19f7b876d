package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maja42/bootstrap/bundling"
)

var inspectExePath string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Shows the package location recorded in a bootstrap executable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		exe, err := os.Open(inspectExePath)
		if err != nil {
			return err
		}
		defer exe.Close()

		offset, length, err := bundling.Inspect(exe)
		if err != nil {
			return fmt.Errorf("inspect %q: %w", inspectExePath, err)
		}
		if offset == 0 && length == 0 {
			cmd.Println("No package bundled")
			return nil
		}
		cmd.Printf("Package at offset %d (%d bytes)\n", offset, length)
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectExePath, "exe", "", "bootstrap executable to inspect")
	_ = inspectCmd.MarkFlagRequired("exe")
}
