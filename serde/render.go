package serde

import (
	"fmt"
	"io"
)

// Preview caps for bounded rendering.
const (
	// PreviewH and PreviewW bound how many pixel rows and columns a
	// non-verbose render shows.
	PreviewH = 3
	PreviewW = 3
	// PreviewDetections bounds how many radar detections a non-verbose
	// render shows.
	PreviewDetections = 5
)

const elision = "…"

// The writers below walk adapter fields directly and stream to the
// formatter; they never build the full textual payload in memory and never
// touch the encode path.

func writeMatrixFull[T any](out io.Writer, h int, row func(int) []T, elem func(io.Writer, T)) {
	fmt.Fprintln(out, "[")
	for i := 0; i < h; i++ {
		fmt.Fprint(out, "  [")
		for j, e := range row(i) {
			if j > 0 {
				fmt.Fprint(out, ", ")
			}
			elem(out, e)
		}
		fmt.Fprintln(out, "],")
	}
	fmt.Fprint(out, "]")
}

func writeMatrixPreview[T any](out io.Writer, h int, row func(int) []T, maxH, maxW int, elem func(io.Writer, T)) {
	fmt.Fprintln(out, "[")
	shown := min(h, maxH)
	for i := 0; i < shown; i++ {
		r := row(i)
		fmt.Fprint(out, "  [")
		for j := 0; j < min(len(r), maxW); j++ {
			if j > 0 {
				fmt.Fprint(out, ", ")
			}
			elem(out, r[j])
		}
		if len(r) > maxW {
			fmt.Fprint(out, ", "+elision)
		}
		fmt.Fprintln(out, "],")
	}
	if h > shown {
		fmt.Fprintln(out, "  "+elision)
	}
	fmt.Fprint(out, "]")
}

func writeSeqFull[T any](out io.Writer, seq []T, elem func(io.Writer, T)) {
	fmt.Fprintln(out, "[")
	for _, e := range seq {
		fmt.Fprint(out, "  ")
		elem(out, e)
		fmt.Fprintln(out, ",")
	}
	fmt.Fprint(out, "]")
}

// writeSeqPreview shows at most maxShow elements and annotates the elision
// line with the remaining count.
func writeSeqPreview[T any](out io.Writer, seq []T, maxShow int, elem func(io.Writer, T)) {
	fmt.Fprintln(out, "[")
	shown := min(len(seq), maxShow)
	for _, e := range seq[:shown] {
		fmt.Fprint(out, "  ")
		elem(out, e)
		fmt.Fprintln(out, ",")
	}
	if len(seq) > shown {
		fmt.Fprintf(out, "  %s (%d more)\n", elision, len(seq)-shown)
	}
	fmt.Fprint(out, "]")
}
