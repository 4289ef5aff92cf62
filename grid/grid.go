// Package grid provides a row-major 2D container for sensor element grids.
//
// A Grid owns its backing storage as a single flat slice with recorded
// dimensions, mirroring how the simulator stores pixel matrices. FromRows is
// the decode-side constructor: it rejects ragged input (rows of unequal
// length) instead of truncating or padding, because a ragged grid has no
// canonical row-major flattening.
package grid

import (
	"reflect"

	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/errors"
)

// Grid is a height×width matrix stored row-major in one flat slice.
// The zero value is an empty 0×0 grid.
type Grid[T any] struct {
	height int
	width  int
	cells  []T
}

// FromFlat wraps an existing row-major buffer with the given dimensions.
// The buffer is retained, not copied.
func FromFlat[T any](height, width int, cells []T) (Grid[T], error) {
	if height < 0 || width < 0 {
		return Grid[T]{}, errors.InvalidData(errors.PhaseConvert, nil,
			"negative grid dimensions")
	}
	if len(cells) != height*width {
		return Grid[T]{}, errors.New(errors.PhaseConvert, errors.KindSchemaMismatch).
			Detail("buffer length %d does not match %dx%d", len(cells), height, width).
			Build()
	}
	return Grid[T]{height: height, width: width, cells: cells}, nil
}

// FromRows builds a grid from an outer sequence of rows, flattening them
// row-major. Row zero fixes the width; any later row of a different length
// fails with a ragged_grid error. An empty outer sequence produces the
// explicit 0×0 grid.
func FromRows[T any](rows [][]T) (Grid[T], error) {
	h := len(rows)
	if h == 0 {
		return Grid[T]{}, nil
	}
	w := len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return Grid[T]{}, errors.RaggedGrid(errors.PhaseDecode, nil, i, len(row), w)
		}
	}

	cells := make([]T, 0, h*w)
	for _, row := range rows {
		cells = append(cells, row...)
	}
	return Grid[T]{height: h, width: w, cells: cells}, nil
}

// Dims returns (height, width).
func (g Grid[T]) Dims() (h, w int) { return g.height, g.width }

// Height returns the number of rows.
func (g Grid[T]) Height() int { return g.height }

// Width returns the row length. A zero-row grid has width 0.
func (g Grid[T]) Width() int { return g.width }

// Len returns the total element count.
func (g Grid[T]) Len() int { return len(g.cells) }

// IsEmpty reports whether the grid holds no elements.
func (g Grid[T]) IsEmpty() bool { return len(g.cells) == 0 }

// Row returns the i-th row as a view into the backing storage.
func (g Grid[T]) Row(i int) []T {
	return g.cells[i*g.width : (i+1)*g.width]
}

// At returns the element at row y, column x.
func (g Grid[T]) At(y, x int) T {
	return g.cells[y*g.width+x]
}

// Flat returns the backing storage. Callers must treat it as read-only.
func (g Grid[T]) Flat() []T { return g.cells }

// Equal reports whether two grids have the same dimensions and elements.
// It makes Grid comparable by go-cmp.
func (g Grid[T]) Equal(o Grid[T]) bool {
	if g.height != o.height || g.width != o.width {
		return false
	}
	if len(g.cells) == 0 && len(o.cells) == 0 {
		return true
	}
	return reflect.DeepEqual(g.cells, o.cells)
}

// Map converts a grid element-by-element.
func Map[T, U any](g Grid[T], f func(T) U) Grid[U] {
	cells := make([]U, len(g.cells))
	for i, c := range g.cells {
		cells[i] = f(c)
	}
	return Grid[U]{height: g.height, width: g.width, cells: cells}
}
