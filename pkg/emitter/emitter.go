// Package emitter implements the CEmitter of spec.md §4.5: given a Program
// that analysis has already validated (the SymbolTable it built alongside
// it), it writes a C translation unit into a source.SourceFile.
//
// Grounded on rhino1998-aeon/pkg/compiler/emit.go's multi-pass emission
// (types and strings collected across packages before the bytecode body is
// written) adapted from bytecode emission to C source text: typedefs and
// declarations are written before any function body, mirroring the
// teacher's "collect forward-referenceable things first" emission order.
package emitter

import (
	"fmt"
	"strings"

	"github.com/xc-lang/xc/pkg/source"
	"github.com/xc-lang/xc/pkg/symbols"
)

const indentUnit = "    "

// writer accumulates output lines at a tracked indentation depth.
type writer struct {
	sf     *source.SourceFile
	indent int
}

func (w *writer) line(format string, args ...any) {
	w.sf.Append(strings.Repeat(indentUnit, w.indent) + fmt.Sprintf(format, args...))
}

func (w *writer) blank() {
	w.sf.Append("")
}

// Emit translates table, the resolved symbol table of an analyzed program,
// into a new SourceFile named outputName, following spec.md §4.5's
// five-section structure: preamble, forward typedefs, function
// declarations, struct definitions, function implementations. The table
// alone is sufficient: every struct and function reachable from the
// program is already registered there by the analyzer.
func Emit(outputName string, table *symbols.Table) *source.SourceFile {
	out := source.New(outputName)
	w := &writer{sf: out}

	emitPreamble(w)
	emitTypedefs(w, table)
	emitFunctionDeclarations(w, table)
	emitStructDefinitions(w, table)
	emitFunctionImplementations(w, table)

	return out
}

func emitPreamble(w *writer) {
	w.line("// Generated by xc. Do not edit.")
	w.blank()
	w.line("#include <stdint.h>")
	w.line("#include <stdbool.h>")
	w.line("#include <stdlib.h>")
	w.line("#include <stddef.h>")
	w.blank()
}

func emitTypedefs(w *writer, table *symbols.Table) {
	structs := table.Structs()
	if len(structs) == 0 {
		return
	}
	for _, s := range structs {
		w.line("typedef struct %s %s;", s.Name.Lexeme, s.Name.Lexeme)
	}
	w.blank()
}

func emitFunctionDeclarations(w *writer, table *symbols.Table) {
	fns := table.Functions()
	if len(fns) == 0 {
		return
	}
	for _, f := range fns {
		w.line("%s;", functionSignature(f))
	}
	w.blank()
}

func emitStructDefinitions(w *writer, table *symbols.Table) {
	for _, s := range table.Structs() {
		w.line("struct %s {", s.Name.Lexeme)
		w.indent++
		for _, m := range s.Members {
			w.line("%s %s;", cType(m.Type), m.Name.Lexeme)
		}
		w.indent--
		w.line("};")
		w.blank()
	}
}

func emitFunctionImplementations(w *writer, table *symbols.Table) {
	for _, f := range table.Functions() {
		w.line("%s {", functionSignature(f))
		w.indent++
		if f.Body != nil {
			emitBlockBody(w, f.Body)
		}
		w.indent--
		w.line("}")
		w.blank()
	}
}
