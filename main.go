// Main package for the gqlscan service and command line tooling
/*
gqlscan scans GraphQL documents with a line-oriented heuristic scanner
and generates Go source from the operations and schema type blocks it
finds.

Usage:
  gqlscan [command]

Available Commands:
  init        Create a config file and schema directory
  generate    Scan the schema directory and generate Go code
  watch       Generate and keep regenerating on document changes
  version     Version information

Flags:
  -h, --help          help for gqlscan
      --path string   path to config files (default "./")
*/

package main

import "github.com/gqlscan/gqlscan/cmd"

func main() {
	cmd.Cmd()
}
