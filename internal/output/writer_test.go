package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/perft"
)

func sampleResult() perft.Result {
	return perft.Result{
		Depth: 1,
		Nodes: 3,
		Divide: []perft.DivideEntry{
			{Move: "a2a3", Nodes: 1},
			{Move: "b2b3", Nodes: 1},
			{Move: "e7e8q", Nodes: 1},
		},
		Elapsed: 500 * time.Millisecond,
	}
}

// TestTextWriter_WriteResult verifies the text format with and without divide
func TestTextWriter_WriteResult(t *testing.T) {
	tests := []struct {
		name   string
		divide bool
		want   string
	}{
		{"total only", false, "perft(1) = 3\n"},
		{"divide", true, "a2a3: 1\nb2b3: 1\ne7e8q: 1\n\nperft(1) = 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewTextWriter(&buf, tt.divide)
			if err := w.WriteResult(sampleResult()); err != nil {
				t.Fatalf("WriteResult failed: %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("output = %q; want %q", buf.String(), tt.want)
			}
		})
	}
}

// TestJSONWriter_BuffersUntilClose verifies nothing is written before Close
func TestJSONWriter_BuffersUntilClose(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf, engine.InitialFEN, false)

	first := sampleResult()
	second := sampleResult()
	second.Depth, second.Nodes = 2, 9

	if err := w.WriteResult(first); err != nil {
		t.Fatalf("WriteResult failed: %v", err)
	}
	if err := w.WriteResult(second); err != nil {
		t.Fatalf("WriteResult failed: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("output written before Close: %q", buf.String())
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var run JSONRun
	if err := json.Unmarshal(buf.Bytes(), &run); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if run.FEN != engine.InitialFEN {
		t.Errorf("FEN = %q", run.FEN)
	}
	if len(run.Results) != 2 {
		t.Fatalf("got %d results; want 2", len(run.Results))
	}
	if run.Results[1].Depth != 2 || run.Results[1].Nodes != 9 {
		t.Errorf("second result = %+v", run.Results[1])
	}
	if run.Results[0].Divide != nil {
		t.Error("divide entries written without divide")
	}
	if strings.Contains(buf.String(), `"divide"`) {
		t.Error("divide key should be omitted")
	}
}

// TestRunToJSON verifies field conversion
func TestRunToJSON(t *testing.T) {
	run := RunToJSON("fen", []perft.Result{sampleResult()}, true)

	got := run.Results[0]
	if got.ElapsedMS != 500 {
		t.Errorf("ElapsedMS = %d; want 500", got.ElapsedMS)
	}
	if got.NPS != 6 {
		t.Errorf("NPS = %d; want 6", got.NPS)
	}
	if len(got.Divide) != 3 || got.Divide[2].Move != "e7e8q" {
		t.Errorf("Divide = %+v", got.Divide)
	}
}

// TestRunToJSON_ZeroElapsed verifies NPS is omitted for instant results
func TestRunToJSON_ZeroElapsed(t *testing.T) {
	res := sampleResult()
	res.Elapsed = 0

	if nps := RunToJSON("fen", []perft.Result{res}, false).Results[0].NPS; nps != 0 {
		t.Errorf("NPS = %d; want 0", nps)
	}
}

// TestNewWriter verifies the format selects the writer type
func TestNewWriter(t *testing.T) {
	cfg := config.NewConfigBuilder().WithOutput(&bytes.Buffer{}).Build()
	if _, ok := NewWriter(cfg).(*TextWriter); !ok {
		t.Error("default format should give a TextWriter")
	}

	cfg.Output.Format = config.JSON
	if _, ok := NewWriter(cfg).(*JSONWriter); !ok {
		t.Error("JSON format should give a JSONWriter")
	}
}
