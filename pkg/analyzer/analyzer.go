// Package analyzer implements the three-phase semantic analyzer of spec.md
// §4.3: load symbols, validate structures, validate functions (signatures,
// bodies, and every expression's evaluated type).
//
// Grounded on rhino1998-aeon/pkg/compiler/semantics.go and type_checker.go's
// two-pass declare-then-resolve shape, and pkg/compiler/errors.go's
// ErrorSet accumulator, realized here as one diagnostics.Sink that every
// phase adds to.
package analyzer

import (
	"log/slog"

	"github.com/xc-lang/xc/pkg/ast"
	"github.com/xc-lang/xc/pkg/diagnostics"
	"github.com/xc-lang/xc/pkg/symbols"
	"github.com/xc-lang/xc/pkg/token"
)

// Analyzer walks a Program, building a SymbolTable and accumulating
// semantic diagnostics (spec.md §4.3).
type Analyzer struct {
	logger *slog.Logger
	table  *symbols.Table
	sink   *diagnostics.Sink
}

// New returns an Analyzer ready to run over a single Program.
func New(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		logger: logger,
		table:  symbols.NewTable(),
		sink:   diagnostics.NewSink(),
	}
}

// Analyze runs all three phases over prog and returns the populated
// SymbolTable and the accumulated diagnostics. The stage has failed iff the
// returned Sink's HasErrors is true (spec.md §2).
func Analyze(logger *slog.Logger, prog *ast.Program) (*symbols.Table, *diagnostics.Sink) {
	a := New(logger)
	a.loadSymbols(prog)
	a.validateStructures(prog)
	a.validateFunctions(prog)
	return a.table, a.sink
}

// report records a semantic diagnostic at pos (spec.md §7: "Semantic
// errors ... all non-fatal; the analyzer continues to accumulate
// diagnostics").
func (a *Analyzer) report(pos token.Position, format string, args ...any) {
	a.sink.Add(pos, 1, format, args...)
}

// phase 1: load symbols (spec.md §4.3 "Load symbols").
func (a *Analyzer) loadSymbols(prog *ast.Program) {
	for _, decl := range prog.Declarations {
		switch d := decl.(type) {
		case *ast.Function:
			if !a.table.Declare(d) {
				a.report(d.Pos(), "%s is already defined", qualifiedFuncName(d))
			}
		case *ast.Structure:
			if !a.table.Declare(d) {
				a.report(d.Pos(), "%q is already defined", d.Name.Lexeme)
			}
		case *ast.ErrorNode:
			// Unreachable in practice: a Program with ErrorNodes already
			// failed the parser stage, and the pipeline (pkg/module) never
			// runs the analyzer on a failed upstream stage. Ignored here
			// defensively rather than panicking.
		}
	}
	a.logger.Debug("loaded symbols", "functions", len(a.table.Functions()), "structs", len(a.table.Structs()))
}

func qualifiedFuncName(f *ast.Function) string {
	if f.HasOwner() {
		return f.Owner.Lexeme + "::" + f.Name.Lexeme
	}
	return f.Name.Lexeme
}
