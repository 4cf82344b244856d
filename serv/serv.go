// Package serv runs the gqlscan code generation service: a one-shot
// pass over a directory of GraphQL documents, optionally followed by a
// file watcher that regenerates on change.
package serv

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/gqlscan/gqlscan/gen"
	"github.com/gqlscan/gqlscan/graph"
)

type Service struct {
	conf *Config
	log  *zap.SugaredLogger
	fs   *aferoFS
}

// Option modifies the service config
type Option func(*Service)

// OptionSetFS replaces the OS filesystem, mostly for testing
func OptionSetFS(fs afero.Fs) Option {
	return func(s *Service) { s.fs = newAferoFS(fs, "") }
}

// OptionSetZapLogger replaces the default logger
func OptionSetZapLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log.Sugar() }
}

func NewService(conf *Config, options ...Option) (*Service, error) {
	if conf == nil {
		conf = NewConfig()
	}
	setDefaults(conf)

	s := &Service{conf: conf}
	for _, op := range options {
		op(s)
	}
	if s.fs == nil {
		s.fs = newAferoFS(afero.NewOsFs(), "")
	}
	if s.log == nil {
		s.log = newLogger(conf).Sugar()
	}
	return s, nil
}

// Start runs one generation pass and, when watching is enabled, blocks
// regenerating changed documents until the context is canceled.
func (s *Service) Start(ctx context.Context) error {
	if err := s.Generate(); err != nil {
		return err
	}
	if !s.conf.Watch {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.startWatcher(ctx) })
	return g.Wait()
}

// Generate walks the schema directory and renders one Go file per
// GraphQL document found.
func (s *Service) Generate() error {
	return s.fs.Walk(s.conf.SchemaDir, func(fpath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() || !s.matchExt(fpath) {
			return nil
		}
		return s.generateFile(fpath)
	})
}

func (s *Service) matchExt(fpath string) bool {
	ext := filepath.Ext(fpath)
	for _, e := range s.conf.Exts {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// generateFile scans one document and writes its generated Go source.
// Documents that yield neither an operation nor type blocks are skipped,
// whether a missing shape matters is the user's call.
func (s *Service) generateFile(fpath string) error {
	b, err := s.fs.Get(fpath)
	if err != nil {
		return err
	}
	doc := string(b)

	// fresh parser per document, the nested registry is per-instance
	var op *graph.Operation
	if o, ok := graph.NewParser().Parse(doc); ok {
		op = &o
	}
	defs := graph.NewParser().ParseSchema(doc)

	if op == nil && len(defs) == 0 {
		s.log.Infof("skipping %s: no operation or type blocks found", fpath)
		return nil
	}

	src, err := gen.New(s.conf.Package).Document(op, defs)
	if err != nil {
		return err
	}

	out := s.outPath(fpath)
	if err := s.fs.Put(out, src); err != nil {
		return err
	}
	s.log.Infof("generated %s from %s", out, fpath)
	return nil
}

func (s *Service) outPath(fpath string) string {
	name := strings.TrimSuffix(filepath.Base(fpath), filepath.Ext(fpath))
	return filepath.Join(s.conf.OutDir, name+".gen.go")
}

func newLogger(conf *Config) *zap.Logger {
	econf := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		NameKey:        "logger",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	level := zap.InfoLevel
	switch conf.LogLevel {
	case "debug":
		level = zap.DebugLevel
	case "warn":
		level = zap.WarnLevel
	case "error":
		level = zap.ErrorLevel
	}

	var core zapcore.Core
	if conf.LogFormat == "json" {
		core = zapcore.NewCore(zapcore.NewJSONEncoder(econf), os.Stdout, level)
	} else {
		econf.EncodeLevel = zapcore.CapitalColorLevelEncoder
		core = zapcore.NewCore(zapcore.NewConsoleEncoder(econf), os.Stdout, level)
	}
	return zap.New(core)
}
