package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/perft"
)

// JSONRun represents a perft run in JSON format.
type JSONRun struct {
	FEN     string       `json:"fen"`
	Results []JSONResult `json:"results"`
}

// JSONResult represents the count for one depth.
type JSONResult struct {
	Depth     int          `json:"depth"`
	Nodes     uint64       `json:"nodes"`
	ElapsedMS int64        `json:"elapsedMs"`
	NPS       uint64       `json:"nps,omitempty"`
	Divide    []JSONDivide `json:"divide,omitempty"`
}

// JSONDivide is the count below one root move.
type JSONDivide struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// RunToJSON converts the results of a run to JSON form. Per-move counts
// are included only when divide is set.
func RunToJSON(fen string, results []perft.Result, divide bool) *JSONRun {
	run := &JSONRun{FEN: fen, Results: make([]JSONResult, len(results))}
	for i, res := range results {
		run.Results[i] = resultToJSON(res, divide)
	}
	return run
}

func resultToJSON(res perft.Result, divide bool) JSONResult {
	jr := JSONResult{
		Depth:     res.Depth,
		Nodes:     res.Nodes,
		ElapsedMS: res.Elapsed.Milliseconds(),
	}
	if secs := res.Elapsed.Seconds(); secs > 0 {
		jr.NPS = uint64(float64(res.Nodes) / secs)
	}
	if divide {
		jr.Divide = make([]JSONDivide, len(res.Divide))
		for i, e := range res.Divide {
			jr.Divide[i] = JSONDivide{Move: e.Move, Nodes: e.Nodes}
		}
	}
	return jr
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
