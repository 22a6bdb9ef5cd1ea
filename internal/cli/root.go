// Package cli provides the command-line interface for color-inspect.
package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// BuildInfo carries the version strings injected at build time.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// String returns a human-readable version string.
func (b BuildInfo) String() string {
	return fmt.Sprintf("color-inspect %s (built %s, commit %s, %s %s/%s)",
		b.Version, b.BuildTime, b.GitCommit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// NewRootCmd builds the color-inspect command tree.
func NewRootCmd(build BuildInfo) *cobra.Command {
	opts := newInspectOptions()

	rootCmd := &cobra.Command{
		Use:   "color-inspect [flags] <image>",
		Short: "Report the background color and palette of an image",
		Long: `color-inspect reads the color of the top-left pixel of an image (usually
its background), prints it as a tuple and as a hex string, and summarizes
the image palette: the number of distinct colors and the most common ones.

Images with more distinct colors than --max-colors get no palette summary.

Supported image formats: PNG, JPEG, GIF, BMP, TIFF, WebP

Examples:
  # Inspect an icon
  color-inspect icon.png

  # Sample another pixel and show the ten most common colors
  color-inspect --x 12 --y 4 --top 10 icon.png

  # Only count colors inside a rectangle, say so when there are too many
  color-inspect --region 0,0,64,64 --report-overflow photo.jpg

Environment variables:
  COLOR_INSPECT_LOG_LEVEL=debug    Enable debug logging on stderr`,
		Args:         cobra.ExactArgs(1),
		Version:      build.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], opts)
		},
	}

	bindInspectFlags(rootCmd.Flags(), opts)
	rootCmd.SetVersionTemplate(build.String() + "\n")
	rootCmd.AddCommand(newVersionCmd(build))

	return rootCmd
}

func newVersionCmd(build BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), build.String())
		},
	}
}
