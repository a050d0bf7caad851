// Package source holds the immutable input to every stage of the pipeline:
// a filename and the ordered lines that make up the file. Tokenizer, parser,
// analyzer, and the diagnostic formatter all read through this narrow,
// read-only view; the emitter writes a second SourceFile as its own output.
package source

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Line is one line of a SourceFile, always ending in "\n": Load and Append
// both add one, including to a final line that had none in the input.
type Line string

// SourceFile is an immutable, ordered sequence of lines plus the name it was
// loaded from (or will be written to).
type SourceFile struct {
	Name  string
	Lines []Line
}

// Load reads r fully and splits it into lines, appending a trailing "\n" to
// every line the way spec.md's input model requires ("a trailing newline is
// appended to each line internally").
func Load(name string, r io.Reader) (*SourceFile, error) {
	sf := &SourceFile{Name: name}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		sf.Lines = append(sf.Lines, Line(scanner.Text()+"\n"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("source: failed to read %q: %w", name, err)
	}

	return sf, nil
}

// New builds an empty SourceFile meant to be filled line by line, the way
// the emitter accumulates its output before being flushed to disk.
func New(name string) *SourceFile {
	return &SourceFile{Name: name}
}

// Append adds a line, appending a trailing newline if the caller omitted one.
func (s *SourceFile) Append(line string) {
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	s.Lines = append(s.Lines, Line(line))
}

// Line returns the 1-based line lineNo, or "" if it is out of range. Used by
// the diagnostic formatter to render the source preview in spec.md §6.
func (s *SourceFile) Line(lineNo int) Line {
	if lineNo < 1 || lineNo > len(s.Lines) {
		return ""
	}
	return s.Lines[lineNo-1]
}

// String concatenates every line back into the full file text.
func (s *SourceFile) String() string {
	var b strings.Builder
	for _, l := range s.Lines {
		b.WriteString(string(l))
	}
	return b.String()
}

// Text trims the trailing newline from a Line, for rendering without the
// line break baked in.
func (l Line) Text() string {
	return strings.TrimSuffix(string(l), "\n")
}
