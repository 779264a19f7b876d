package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/maja42/bootstrap/bundling"
)

var (
	exePath     string
	packagePath string
	outPath     string
)

var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Appends a package to a bootstrap executable",
	Args:  cobra.NoArgs,
	RunE:  runBundle,
}

func init() {
	bundleCmd.Flags().StringVar(&exePath, "exe", "", "bootstrap executable that should be bundled (windows or linux)")
	bundleCmd.Flags().StringVar(&packagePath, "package", "", "zip package containing the installer")
	bundleCmd.Flags().StringVar(&outPath, "out", "", "path for the resulting executable")
	for _, name := range []string{"exe", "package", "out"} {
		_ = bundleCmd.MarkFlagRequired(name)
	}
}

func runBundle(cmd *cobra.Command, _ []string) (err error) {
	log.Infof("Bundling %q into %q --> %q", packagePath, exePath, outPath)

	out, err := os.OpenFile(outPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o755)
	if err != nil {
		return fmt.Errorf("open output file %q: %w", outPath, err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close output file: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(outPath)
		}
	}()

	if err := bundling.BundleFiles(out, exePath, packagePath, log.Infof); err != nil {
		return err
	}

	cmd.Println("Finished")
	return nil
}
