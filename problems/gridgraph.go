// Grid-structured graphs for the Grid topology variant. Cells are indexed
// row-major: cell (row, col) is vertex row*cols + col.

package problems

// GridConnectivity selects which cells of a grid count as neighbors.
type GridConnectivity int

const (
	// Conn4 connects each cell to its horizontal and vertical neighbors.
	Conn4 GridConnectivity = 4
	// Conn8 additionally connects diagonal neighbors (king graph).
	Conn8 GridConnectivity = 8
)

var conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
var conn8Offsets = [][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// NewGridGraph builds the rows x cols grid graph under the given
// connectivity. The result carries the Grid topology when wrapped in a
// graph problem via WithTopology(TopologyGrid).
func NewGridGraph(rows, cols int, conn GridConnectivity) (*UndirectedGraph, error) {
	offsets := conn4Offsets
	if conn == Conn8 {
		offsets = conn8Offsets
	}
	var pairs [][2]int
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			for _, d := range offsets {
				nr, nc := r+d[1], c+d[0]
				if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
					continue
				}
				v := nr*cols + nc
				if u < v {
					pairs = append(pairs, [2]int{u, v})
				}
			}
		}
	}
	return NewUndirectedGraph(rows*cols, pairs)
}

// GridCoordinate converts a row-major vertex index back to (row, col).
func GridCoordinate(idx, cols int) (row, col int) {
	return idx / cols, idx % cols
}
