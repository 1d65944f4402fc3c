package label

import "github.com/katalvlaran/perc2d/grid"

// Label finds all connected clusters of "on" cells in mask according to
// conn, and returns a label map of the same shape plus the cluster count:
// labels[y][x] = 0 for background cells, 1..n for cluster cells.
//
// Labels are assigned in row-major discovery order, so the numbering is
// deterministic for a given mask and connectivity. It carries no size or
// position meaning.
//
// Returns grid.ErrEmptyGrid or grid.ErrNonRectangular for a bad mask shape,
// ErrBadConnectivity for a conn outside {Conn4, Conn8}.
//
// Time:   O(R×C×d), where d = 4 or 8.
// Memory: O(R×C) for the label map and BFS queue.
func Label(mask grid.Mask, conn Connectivity) (labels [][]int, n int, err error) {
	if err = mask.Check(); err != nil {
		return nil, 0, err
	}
	offsets, err := conn.offsets()
	if err != nil {
		return nil, 0, err
	}

	rows, cols := mask.Dims()
	labels = make([][]int, rows)
	for y := range labels {
		labels[y] = make([]int, cols)
	}

	// BFS queue of row-major cell indices, reused across clusters.
	queue := make([]int, 0, rows*cols)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if !mask[y][x] || labels[y][x] != 0 {
				continue // background, or already claimed
			}
			n++
			labels[y][x] = n
			queue = append(queue[:0], y*cols+x)

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				ux, uy := u%cols, u/cols
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if vx < 0 || vx >= cols || vy < 0 || vy >= rows {
						continue
					}
					if !mask[vy][vx] || labels[vy][vx] != 0 {
						continue
					}
					labels[vy][vx] = n
					queue = append(queue, vy*cols+vx)
				}
			}
		}
	}

	return labels, n, nil
}

// ClusterMask extracts the boolean mask of the cluster with the given id
// from a label map produced by Label.
// An id no cluster carries (0, negative, > n) yields an all-false mask.
// Complexity: O(R×C) time and memory.
func ClusterMask(labels [][]int, id int) grid.Mask {
	m := make(grid.Mask, len(labels))
	for y, row := range labels {
		m[y] = make([]bool, len(row))
		for x, v := range row {
			m[y][x] = v == id
		}
	}

	return m
}
