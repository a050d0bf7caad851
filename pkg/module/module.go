// Package module wires the five pipeline components of spec.md §2 into a
// single aggregate: SourceFile -> Tokenizer -> Parser -> Analyzer ->
// CEmitter, halting at the first stage that recorded a diagnostic.
//
// Grounded on rhino1998-aeon/pkg/compiler/compiler.go's Compiler{logger,
// Config} / New(logger, config) / Compile(ctx) error shape, reused almost
// verbatim as the orchestrator: this package is the Module of spec.md's
// GLOSSARY, "the per-compilation aggregate holding source, token stream,
// AST, symbol table, and output source file."
package module

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/xc-lang/xc/pkg/analyzer"
	"github.com/xc-lang/xc/pkg/diagnostics"
	"github.com/xc-lang/xc/pkg/emitter"
	"github.com/xc-lang/xc/pkg/lexer"
	"github.com/xc-lang/xc/pkg/parser"
	"github.com/xc-lang/xc/pkg/source"
)

// ErrCompilationFailed is returned by Compile when a pipeline stage
// recorded at least one diagnostic (spec.md §2: "A stage fails iff it
// recorded at least one error"). The diagnostics themselves have already
// been written to the Compile caller's writer by the time this is
// returned.
var ErrCompilationFailed = errors.New("compilation failed")

// Config is the one external input this package needs: the source path.
// There is no other configuration surface (spec.md §6: "Environment: none
// read").
type Config struct {
	Path string
}

// Module is a single compilation's aggregate state.
type Module struct {
	logger *slog.Logger
	Config Config
}

// New constructs a Module for a single source file.
func New(logger *slog.Logger, config Config) *Module {
	if logger == nil {
		logger = slog.Default()
	}
	return &Module{logger: logger, Config: config}
}

// Compile runs every pipeline stage in order, writing any diagnostics to
// diagW as soon as a stage fails. On success it returns the generated C
// SourceFile, not yet written to disk.
func (m *Module) Compile(ctx context.Context, diagW io.Writer) (*source.SourceFile, error) {
	srcFile, err := m.loadSource()
	if err != nil {
		return nil, fmt.Errorf("failed to load %q: %w", m.Config.Path, err)
	}
	m.logger.DebugContext(ctx, "loaded source", "path", m.Config.Path, "lines", len(srcFile.Lines))

	tokens, lexSink := lexer.New(srcFile).Tokenize()
	m.logger.DebugContext(ctx, "tokenized", "tokens", len(tokens), "errors", lexSink.Len())
	if lexSink.HasErrors() {
		diagnostics.WriteAll(diagW, srcFile, lexSink)
		return nil, ErrCompilationFailed
	}

	prog, parseSink := parser.Parse(tokens)
	m.logger.DebugContext(ctx, "parsed", "declarations", len(prog.Declarations), "errors", parseSink.Len())
	if parseSink.HasErrors() {
		diagnostics.WriteAll(diagW, srcFile, parseSink)
		return nil, ErrCompilationFailed
	}

	table, analyzeSink := analyzer.Analyze(m.logger, prog)
	m.logger.DebugContext(ctx, "analyzed", "errors", analyzeSink.Len())
	if analyzeSink.HasErrors() {
		diagnostics.WriteAll(diagW, srcFile, analyzeSink)
		return nil, ErrCompilationFailed
	}

	out := emitter.Emit(m.Config.Path+".c", table)
	m.logger.DebugContext(ctx, "emitted", "output", out.Name, "lines", len(out.Lines))
	return out, nil
}

func (m *Module) loadSource() (*source.SourceFile, error) {
	f, err := os.Open(m.Config.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return source.Load(m.Config.Path, f)
}
