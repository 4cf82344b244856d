package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/gqlscan/gqlscan/serv"
)

const confTmpl = `app_name: "%s"
schema_dir: ./graphql
out_dir: ./gen
package: model

# regenerate on document changes
watch: false

log_level: info
log_format: simple
`

const sampleDoc = `type Movie @table {
  title: String
  release_year: Int
}
`

func confSource(name string) string {
	return fmt.Sprintf(confTmpl, name)
}

func initCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "init [name]",
		Short: "Create a config file and schema directory",
		Run:   cmdInit,
	}
	return c
}

func cmdInit(cmd *cobra.Command, args []string) {
	name := "gqlscan"
	if len(args) != 0 {
		name = args[0]
	}

	fs := afero.NewOsFs()

	cf := filepath.Join(cpath, serv.GetConfigName())
	if ok, _ := afero.Exists(fs, cf); ok {
		log.Fatalf("config file already exists: %s", cf)
	}

	if err := afero.WriteFile(fs, cf,
		[]byte(confSource(name)), 0o644); err != nil {
		log.Fatal(err)
	}

	sd := filepath.Join(cpath, "graphql")
	if err := fs.MkdirAll(sd, 0o755); err != nil {
		log.Fatal(err)
	}
	if err := afero.WriteFile(fs,
		filepath.Join(sd, "schema.graphql"), []byte(sampleDoc), 0o644); err != nil {
		log.Fatal(err)
	}

	log.Infof("created %s", cf)
}
