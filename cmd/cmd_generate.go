package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gqlscan/gqlscan/serv"
)

func generateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "generate",
		Short: "Scan the schema directory and generate Go code",
		Run:   cmdGenerate,
	}
	return c
}

func cmdGenerate(cmd *cobra.Command, args []string) {
	setup(cpath)

	s, err := serv.NewService(conf)
	if err != nil {
		log.Fatal(err)
	}

	if err := s.Generate(); err != nil {
		log.Fatal(err)
	}
}
