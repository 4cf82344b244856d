// Package cmd is the gqlscan command line tool
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gqlscan/gqlscan/serv"
)

var (
	log   *zap.SugaredLogger
	conf  *serv.Config
	cpath string
)

func Cmd() {
	log = newLogger(false).Sugar()

	cobra.EnableCommandSorting = false
	rootCmd := &cobra.Command{
		Use:   "gqlscan",
		Short: BuildDetails(),
	}

	rootCmd.PersistentFlags().StringVar(&cpath,
		"path", "./", "path to config files")

	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%s", err)
	}
}

func setup(cpath string) {
	if conf != nil {
		return
	}

	cp, err := filepath.Abs(cpath)
	if err != nil {
		log.Fatal(err)
	}

	cf := filepath.Join(cp, serv.GetConfigName())
	if conf, err = serv.ReadInConfig(cf); err != nil {
		log.Fatal(err)
	}

	if conf.LogFormat == "json" {
		log = newLogger(true).Sugar()
	}
}

func newLogger(json bool) *zap.Logger {
	econf := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		NameKey:        "logger",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	var core zapcore.Core

	if json {
		core = zapcore.NewCore(zapcore.NewJSONEncoder(econf), os.Stdout, zap.DebugLevel)
	} else {
		econf.EncodeLevel = zapcore.CapitalColorLevelEncoder
		core = zapcore.NewCore(zapcore.NewConsoleEncoder(econf), os.Stdout, zap.DebugLevel)
	}
	return zap.New(core)
}
