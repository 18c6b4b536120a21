// Package output writes perft results as text or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/perft"
)

// ResultWriter is the interface for writing perft results to output.
// Different implementations handle different output formats.
type ResultWriter interface {
	// WriteResult writes the result of one depth.
	WriteResult(res perft.Result) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for cfg's output format.
func NewWriter(cfg *config.Config) ResultWriter {
	if cfg.Output.Format == config.JSON {
		return NewJSONWriter(cfg.Output.Writer, cfg.Perft.FEN, cfg.Perft.Divide)
	}
	return NewTextWriter(cfg.Output.Writer, cfg.Perft.Divide)
}

// TextWriter writes one "perft(n) = count" line per result, preceded by
// the root move counts when divide is set.
type TextWriter struct {
	w      io.Writer
	divide bool
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, divide bool) *TextWriter {
	return &TextWriter{w: w, divide: divide}
}

// WriteResult writes res immediately.
func (tw *TextWriter) WriteResult(res perft.Result) error {
	if tw.divide {
		for _, e := range res.Divide {
			if _, err := fmt.Fprintf(tw.w, "%s: %d\n", e.Move, e.Nodes); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(tw.w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(tw.w, "perft(%d) = %d\n", res.Depth, res.Nodes)
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as one document on Close.
type JSONWriter struct {
	w       io.Writer
	fen     string
	divide  bool
	results []perft.Result
}

// NewJSONWriter creates a new JSON writer for the position fen.
func NewJSONWriter(w io.Writer, fen string, divide bool) *JSONWriter {
	return &JSONWriter{
		w:       w,
		fen:     fen,
		divide:  divide,
		results: make([]perft.Result, 0),
	}
}

// WriteResult buffers res until Close.
func (jw *JSONWriter) WriteResult(res perft.Result) error {
	jw.results = append(jw.results, res)
	return nil
}

// Flush is a no-op; the document is only complete on Close.
func (jw *JSONWriter) Flush() error {
	return nil
}

// Close writes all buffered results.
func (jw *JSONWriter) Close() error {
	return writeJSON(jw.w, RunToJSON(jw.fen, jw.results, jw.divide))
}
