package module_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"

	"github.com/xc-lang/xc/pkg/module"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.x")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

// TestEndToEndScenarios reproduces the six worked scenarios of spec.md §8
// verbatim, exercising the full SourceFile -> Tokenizer -> Parser ->
// Analyzer -> CEmitter pipeline.
func TestEndToEndScenarios(t *testing.T) {
	t.Run("scenario 1: trivial main", func(t *testing.T) {
		r := require.New(t)
		path := writeSource(t, "int main(void) { return 0; }")
		mod := module.New(slogt.New(t), module.Config{Path: path})

		var stderr bytes.Buffer
		out, err := mod.Compile(context.Background(), &stderr)
		r.NoError(err)
		r.Empty(stderr.String())
		r.Contains(out.String(), "int32_t main(void) {")
		r.Contains(out.String(), "return 0;")
	})

	t.Run("scenario 2: method with self member access", func(t *testing.T) {
		r := require.New(t)
		path := writeSource(t, "struct Pt { int x; int y; } int Pt::sum(void) { return self.x + self.y; }")
		mod := module.New(slogt.New(t), module.Config{Path: path})

		var stderr bytes.Buffer
		out, err := mod.Compile(context.Background(), &stderr)
		r.NoError(err)
		r.Empty(stderr.String())

		text := out.String()
		r.Contains(text, "typedef struct Pt Pt;")
		r.Contains(text, "int32_t Pt_sum(Pt* self);")
		r.Contains(text, "struct Pt {")
		r.Contains(text, "int32_t x;")
		r.Contains(text, "int32_t y;")
		r.Contains(text, "return ((*self).x + (*self).y);")
	})

	t.Run("scenario 3: self-referencing struct member rejected", func(t *testing.T) {
		r := require.New(t)
		path := writeSource(t, "struct X { X inner; }")
		mod := module.New(slogt.New(t), module.Config{Path: path})

		var stderr bytes.Buffer
		out, err := mod.Compile(context.Background(), &stderr)
		r.ErrorIs(err, module.ErrCompilationFailed)
		r.Nil(out)
		r.Contains(stderr.String(), "self referencing member")
	})

	t.Run("scenario 4: for-loop init variable escapes the loop", func(t *testing.T) {
		r := require.New(t)
		path := writeSource(t, "int f(void) { for (int i = 0; i < 10; i += 1) { break; } return i; }")
		mod := module.New(slogt.New(t), module.Config{Path: path})

		var stderr bytes.Buffer
		out, err := mod.Compile(context.Background(), &stderr)
		r.NoError(err)
		r.Empty(stderr.String())
		r.Contains(out.String(), "return i;")
	})

	t.Run("scenario 5: null returned from non-reference function rejected", func(t *testing.T) {
		r := require.New(t)
		path := writeSource(t, "int g(void) { return null; }")
		mod := module.New(slogt.New(t), module.Config{Path: path})

		var stderr bytes.Buffer
		out, err := mod.Compile(context.Background(), &stderr)
		r.ErrorIs(err, module.ErrCompilationFailed)
		r.Nil(out)
		r.Contains(stderr.String(), "mismatch in return type")
	})

	t.Run("scenario 6: octal literal rewritten to C spelling", func(t *testing.T) {
		r := require.New(t)
		path := writeSource(t, "int main(void) { int x = 0o17; return x; }")
		mod := module.New(slogt.New(t), module.Config{Path: path})

		var stderr bytes.Buffer
		out, err := mod.Compile(context.Background(), &stderr)
		r.NoError(err)
		r.Empty(stderr.String())
		r.Contains(out.String(), "int32_t x = 0017;")
	})
}

func TestCompileEmptySourceWritesOnlyPreamble(t *testing.T) {
	r := require.New(t)
	path := writeSource(t, "")
	mod := module.New(slogt.New(t), module.Config{Path: path})

	var stderr bytes.Buffer
	out, err := mod.Compile(context.Background(), &stderr)
	r.NoError(err)
	r.Empty(stderr.String())

	text := out.String()
	r.Contains(text, "#include <stdint.h>")
	r.NotContains(text, "typedef")
	r.NotContains(text, "struct")
}

func TestCompileMissingFileReturnsRealError(t *testing.T) {
	r := require.New(t)
	mod := module.New(slogt.New(t), module.Config{Path: filepath.Join(t.TempDir(), "missing.x")})

	var stderr bytes.Buffer
	out, err := mod.Compile(context.Background(), &stderr)
	r.Error(err)
	r.NotErrorIs(err, module.ErrCompilationFailed)
	r.Nil(out)
}

func TestCompileOutputNameAppendsDotC(t *testing.T) {
	r := require.New(t)
	path := writeSource(t, "int main(void) { return 0; }")
	mod := module.New(slogt.New(t), module.Config{Path: path})

	out, err := mod.Compile(context.Background(), &bytes.Buffer{})
	r.NoError(err)
	r.Equal(path+".c", out.Name)
}
