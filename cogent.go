package cogent

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/specialistvlad/cogent/internal/config"
	"github.com/specialistvlad/cogent/internal/ctxlog"
	"github.com/specialistvlad/cogent/internal/fsutil"
	"github.com/specialistvlad/cogent/internal/grammar"
	"github.com/specialistvlad/cogent/internal/logging"
	"github.com/specialistvlad/cogent/internal/transform"
	"github.com/specialistvlad/cogent/model"
)

// Config holds the parser settings read by LoadConfig.
type Config = config.Config

// LoadConfig reads settings from defaults, the optional YAML file at path and
// COGENT_* environment variables, in increasing priority.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// Parser turns Cogent source text into modules. A Parser is safe for
// concurrent use.
type Parser struct {
	cfg     *config.Config
	logger  *slog.Logger
	lenient *bool
	tr      *transform.Transformer
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used while parsing. Without it the parser logs
// nothing, unless a Config is given, in which case it logs to stderr at the
// configured level and format.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

// WithLenient overrides the configured step fallback behavior.
func WithLenient(lenient bool) Option {
	return func(p *Parser) { p.lenient = &lenient }
}

// WithConfig applies settings loaded by LoadConfig.
func WithConfig(cfg *Config) Option {
	return func(p *Parser) { p.cfg = cfg }
}

// NewParser creates a Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}

	configured := p.cfg != nil
	if !configured {
		p.cfg = config.Default()
	}
	if p.logger == nil {
		if configured {
			p.logger = logging.New(p.cfg.Log.Level, p.cfg.Log.Format, os.Stderr)
		} else {
			p.logger = logging.NewNop()
		}
	}

	lenient := p.cfg.Transform.Lenient
	if p.lenient != nil {
		lenient = *p.lenient
	}
	p.tr = transform.New(transform.Options{Lenient: lenient})
	return p
}

// ParseString parses every module declared in src.
func (p *Parser) ParseString(ctx context.Context, src string) ([]*model.Module, error) {
	return p.parse(ctx, "<string>", []byte(src))
}

// ParseModule parses src, which must declare exactly one module.
func (p *Parser) ParseModule(ctx context.Context, src string) (*model.Module, error) {
	modules, err := p.ParseString(ctx, src)
	if err != nil {
		return nil, err
	}
	if len(modules) != 1 {
		return nil, fmt.Errorf("expected exactly one module, found %d", len(modules))
	}
	return modules[0], nil
}

// ParseFile reads and parses the file at path.
func (p *Parser) ParseFile(ctx context.Context, path string) ([]*model.Module, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return p.parse(ctx, path, src)
}

// LoadDir parses every source file below root, in lexical path order, and
// returns all their modules. The first failing file stops the load.
func (p *Parser) LoadDir(ctx context.Context, root string) ([]*model.Module, error) {
	logger := p.logger.With("root", root)

	files, err := fsutil.FindFilesByExtension(root, p.cfg.Source.Extension)
	if err != nil {
		return nil, fmt.Errorf("finding source files in %s: %w", root, err)
	}
	logger.Debug("Found source files.", "count", len(files), "extension", p.cfg.Source.Extension)

	var all []*model.Module
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		modules, err := p.ParseFile(ctx, path)
		if err != nil {
			return nil, err
		}
		all = append(all, modules...)
	}
	logger.Info("Loaded modules.", "files", len(files), "modules", len(all))
	return all, nil
}

func (p *Parser) parse(ctx context.Context, filename string, src []byte) ([]*model.Module, error) {
	logger := p.logger.With("file", filename)
	ctx = ctxlog.WithLogger(ctx, logger)

	root, diags := grammar.Parse(filename, src)
	if diags.HasErrors() {
		logger.Debug("Source rejected by grammar.", "diagnostics", len(diags))
		return nil, &SyntaxError{Filename: filename, Diagnostics: diags, src: src}
	}

	modules, err := p.tr.Transform(ctx, root)
	if err != nil {
		return nil, err
	}
	logger.Debug("Parsed source.", "modules", len(modules))
	return modules, nil
}
