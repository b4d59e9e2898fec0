package piece

import "github.com/wellforge/hatetris-core/pkg/well"

// cell is a (column, row) offset within a piece's rotation bounding box; row
// 0 is the top of the box.
type cell struct{ dx, dy int }

// shape is one rotation state of one piece: its bounding box and the cells
// it occupies within that box.
type shape struct {
	width, height int
	cells         []cell
}

// standardShapes lists the four rotation states of each of the seven
// tetrominoes. This stands in for the offline geometry-to-table compiler
// spec.md §1 treats as an external collaborator: package search only ever
// consumes the resulting Tables, never this shape data, so swapping in a
// different table source (a real generator, a data file, a different piece
// set) requires no change outside this file.
var standardShapes = [PieceCount][4]shape{
	I: {
		{width: 4, height: 1, cells: []cell{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{width: 1, height: 4, cells: []cell{{0, 0}, {0, 1}, {0, 2}, {0, 3}}},
		{width: 4, height: 1, cells: []cell{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{width: 1, height: 4, cells: []cell{{0, 0}, {0, 1}, {0, 2}, {0, 3}}},
	},
	O: {
		{width: 2, height: 2, cells: []cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		{width: 2, height: 2, cells: []cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		{width: 2, height: 2, cells: []cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		{width: 2, height: 2, cells: []cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	},
	T: {
		{width: 3, height: 2, cells: []cell{{1, 0}, {0, 1}, {1, 1}, {2, 1}}},
		{width: 2, height: 3, cells: []cell{{0, 0}, {0, 1}, {1, 1}, {0, 2}}},
		{width: 3, height: 2, cells: []cell{{0, 0}, {1, 0}, {2, 0}, {1, 1}}},
		{width: 2, height: 3, cells: []cell{{1, 0}, {0, 1}, {1, 1}, {1, 2}}},
	},
	S: {
		{width: 3, height: 2, cells: []cell{{1, 0}, {2, 0}, {0, 1}, {1, 1}}},
		{width: 2, height: 3, cells: []cell{{0, 0}, {0, 1}, {1, 1}, {1, 2}}},
		{width: 3, height: 2, cells: []cell{{1, 0}, {2, 0}, {0, 1}, {1, 1}}},
		{width: 2, height: 3, cells: []cell{{0, 0}, {0, 1}, {1, 1}, {1, 2}}},
	},
	Z: {
		{width: 3, height: 2, cells: []cell{{0, 0}, {1, 0}, {1, 1}, {2, 1}}},
		{width: 2, height: 3, cells: []cell{{1, 0}, {0, 1}, {1, 1}, {0, 2}}},
		{width: 3, height: 2, cells: []cell{{0, 0}, {1, 0}, {1, 1}, {2, 1}}},
		{width: 2, height: 3, cells: []cell{{1, 0}, {0, 1}, {1, 1}, {0, 2}}},
	},
	L: {
		{width: 2, height: 3, cells: []cell{{1, 0}, {1, 1}, {0, 2}, {1, 2}}},
		{width: 3, height: 2, cells: []cell{{0, 0}, {0, 1}, {1, 1}, {2, 1}}},
		{width: 2, height: 3, cells: []cell{{0, 0}, {1, 0}, {0, 1}, {0, 2}}},
		{width: 3, height: 2, cells: []cell{{0, 0}, {1, 0}, {2, 0}, {2, 1}}},
	},
	J: {
		{width: 2, height: 3, cells: []cell{{0, 0}, {0, 1}, {0, 2}, {1, 2}}},
		{width: 3, height: 2, cells: []cell{{0, 0}, {1, 0}, {2, 0}, {0, 1}}},
		{width: 2, height: 3, cells: []cell{{0, 0}, {1, 0}, {1, 1}, {1, 2}}},
		{width: 3, height: 2, cells: []cell{{2, 0}, {0, 1}, {1, 1}, {2, 1}}},
	},
}

// StandardTables builds Tables for the seven standard tetrominoes on the
// well package's fixed Columns-wide board.
func StandardTables() *Tables {
	t := &Tables{}
	for p := 0; p < PieceCount; p++ {
		buildPiece(t, Index(p))
	}
	return t
}

func buildPiece(t *Tables, p Index) {
	stampAt := func(rotation, column int) ([4]well.Row, bool) {
		s := standardShapes[p][rotation]
		if column < 0 || column+s.width > well.Columns {
			return [4]well.Row{}, false
		}
		var stamp [4]well.Row
		offset := 4 - s.height
		for _, c := range s.cells {
			stamp[c.dy+offset] |= 1 << uint(column+c.dx)
		}
		return stamp, true
	}

	for rotation := 0; rotation < well.Rotations; rotation++ {
		for column := 0; column < well.Columns; column++ {
			pose := well.Pose(column, rotation)
			stamp, ok := stampAt(rotation, column)
			if !ok {
				continue
			}
			t.PieceSlice[p][pose] = stamp
			t.EmptyMask[p] |= 1 << uint(pose)

			topR := topMostRow(stamp)
			t.HeightMask[p][topR] |= 1 << uint(pose)
		}
	}

	for rowValue := 0; rowValue < maxRow; rowValue++ {
		row := well.Row(rowValue)
		for pose := 0; pose < well.WaveSize; pose++ {
			bit := well.Wave(1) << uint(pose)
			stamp := t.PieceSlice[p][pose]
			for r := 0; r < 4; r++ {
				if stamp[r]&row == 0 {
					t.RowMask[p][rowValue][r] |= bit
				}
				if stamp[r]|row == well.FullRow {
					t.ScoreMask[p][rowValue][r] |= bit
				}
			}
		}
	}
}

// topMostRow returns the smallest r with a non-empty stamp row, i.e. the
// window offset of the piece's highest occupied cell. Every pose is
// bottom-anchored at window offset 3, so this varies with the piece's own
// bounding-box height instead of bottomMostRow, which would be 3 for every
// pose and carry no information.
func topMostRow(stamp [4]well.Row) int {
	for r := 0; r < 4; r++ {
		if stamp[r] != 0 {
			return r
		}
	}
	return 3
}
