package serde

import (
	stderrors "errors"
	"unsafe"

	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/errors"
	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/grid"
)

// viewSlice reinterprets an element slice as its wire-schema equivalent
// without copying. F and W must be layout-identical, which the struct
// conversion audits in schema.go guarantee. The returned slice aliases s
// and shares its lifetime.
func viewSlice[F, W any](s []F) []W {
	if len(s) == 0 {
		return []W{}
	}
	return unsafe.Slice((*W)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

// viewRows slices a row-major element buffer into h wire-typed rows of
// width w, zero-copy. Only row headers are allocated.
func viewRows[F, W any](flat []F, h, w int) [][]W {
	rows := make([][]W, h)
	for i := range rows {
		rows[i] = viewSlice[F, W](flat[i*w : (i+1)*w])
	}
	return rows
}

// decodeGrid assembles decoded wire rows into an owned grid via
// grid.FromRows, which rejects ragged input, then converts element-by-element.
// A ragged_grid failure gains the collection's field path; an empty outer
// sequence yields the 0×0 grid.
func decodeGrid[W, F any](rows [][]W, path string, conv func(W) F) (grid.Grid[F], error) {
	g, err := grid.FromRows(rows)
	if err != nil {
		var serr *errors.Error
		if stderrors.As(err, &serr) {
			serr.Path = append([]string{path}, serr.Path...)
		}
		return grid.Grid[F]{}, err
	}
	return grid.Map(g, conv), nil
}

// decodeSeq converts a decoded 1D wire sequence element-by-element,
// preserving order. The element count becomes the collection length.
func decodeSeq[W, F any](in []W, conv func(W) F) []F {
	out := make([]F, len(in))
	for i, e := range in {
		out[i] = conv(e)
	}
	return out
}

// copySeq clones a foreign element slice into adapter-owned storage.
func copySeq[F any](in []F) []F {
	out := make([]F, len(in))
	copy(out, in)
	return out
}
