package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/chronox/pkg/core/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "chronox v%s\n", info.CLI)
			fmt.Fprintf(w, "  Library:    %s\n", info.Library)
			fmt.Fprintf(w, "  Git Commit: %s\n", info.Commit)
			fmt.Fprintf(w, "  Go Version: %s\n", runtime.Version())
			fmt.Fprintf(w, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(w, "  Leap table: %s (in use: %s)\n", info.LeapTable, a.table.Version())
		},
	}
}
