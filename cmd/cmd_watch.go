package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gqlscan/gqlscan/serv"
)

func watchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "watch",
		Short: "Generate and keep regenerating on document changes",
		Run:   cmdWatch,
	}
	return c
}

func cmdWatch(cmd *cobra.Command, args []string) {
	setup(cpath)
	conf.Watch = true

	s, err := serv.NewService(conf)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := s.Start(ctx); err != nil && err != context.Canceled {
		log.Fatal(err)
	}
}
