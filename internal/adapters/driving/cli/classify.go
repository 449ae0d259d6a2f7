package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/s2angs/internal/core/domain"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <s2_path>",
	Short: "Print the product kind of a path",
	Long: `Print how s2angs reads a path: "xml" for a tile metadata file, "safe" for
an unpacked .SAFE folder or "zip" for a zipped product. Nothing is read
from disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	if angleBandService == nil {
		return errors.New("angle band service not configured")
	}

	kind, err := classify(args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if isTerminal(w) {
		fmt.Fprintf(w, "%s (%s)\n", kind, kind.Description())
		return nil
	}
	fmt.Fprintln(w, kind)
	return nil
}

// classify resolves the source kind of reference. The result does not depend
// on the output resolution.
func classify(reference string) (domain.SourceKind, error) {
	return angleBandService(domain.DefaultResolution).Classify(reference)
}
