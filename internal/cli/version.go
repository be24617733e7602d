package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

// build describes the binary; main overrides it from ldflags.
var build = buildInfo{Version: "dev", Commit: "none", Date: "unknown"}

type buildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Line is the one-line form, e.g. "panicribbon v1.2.0 (abc1234, 2025-01-08)".
// Unset fields are left out.
func (b buildInfo) Line() string {
	v := b.Version
	if v != "" && v != "dev" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	var extra []string
	if b.Commit != "" && b.Commit != "none" {
		extra = append(extra, b.Commit)
	}
	if b.Date != "" && b.Date != "unknown" {
		extra = append(extra, b.Date)
	}
	if len(extra) == 0 {
		return "panicribbon " + v
	}
	return fmt.Sprintf("panicribbon %s (%s)", v, strings.Join(extra, ", "))
}

var versionVerbose bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd.OutOrStdout(), versionVerbose)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVarP(&versionVerbose, "verbose", "v", false, "Also print the Go toolchain and platform")
}

func printVersion(w io.Writer, verbose bool) {
	fmt.Fprintln(w, build.Line())
	if verbose {
		fmt.Fprintf(w, "%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	}
}

// SetVersionInfo records the ldflags values and enables --version on the root command.
func SetVersionInfo(version, commit, date string) {
	build = buildInfo{Version: version, Commit: commit, Date: date}
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(build.Line() + "\n")
}
