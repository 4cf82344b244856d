package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	// These variables are set using -ldflags
	version string
	commit  string
	date    string
)

func versionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Version information",
		Run:   cmdVersion,
	}
	return c
}

func cmdVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("%s\n", BuildDetails())
}

func BuildDetails() string {
	if version == "" {
		return `
gqlscan (unknown version)
Scan GraphQL documents and generate Go code

To build with version information please use the Makefile
> git clone https://github.com/gqlscan/gqlscan
> cd gqlscan && make install
`
	}

	return fmt.Sprintf(`
gqlscan %v

Commit SHA-1          : %v
Commit timestamp      : %v
Go version            : %v
`,
		version,
		commit,
		date,
		runtime.Version())
}
