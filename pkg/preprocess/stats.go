package preprocess

import (
	"fmt"
	"strings"
)

// Stats captures what a pipeline run did to the document size.
type Stats struct {
	// InputBytes is the size of the text the first operation saw.
	InputBytes int `json:"input_bytes"`

	// OutputBytes is the size after the most recent operation.
	OutputBytes int `json:"output_bytes"`

	// Operations lists the rewrite operations applied, in call order.
	Operations []string `json:"operations,omitempty"`
}

// ReductionPercent returns the percentage reduction in size. Entity
// decoding can grow the text, so the value may be negative.
func (s Stats) ReductionPercent() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.InputBytes-s.OutputBytes) / float64(s.InputBytes) * 100
}

// String returns a one-line human-readable summary.
func (s Stats) String() string {
	line := fmt.Sprintf("%d -> %d bytes (%.1f%% reduction)",
		s.InputBytes, s.OutputBytes, s.ReductionPercent())
	if len(s.Operations) > 0 {
		line += ": " + strings.Join(s.Operations, ", ")
	}
	return line
}

func (s *Stats) record(op string, before, after int) {
	if len(s.Operations) == 0 {
		s.InputBytes = before
	}
	s.OutputBytes = after
	s.Operations = append(s.Operations, op)
}
