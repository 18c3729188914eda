package output

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/voxelsculpt/hrptree/hrpgraph"
	"github.com/voxelsculpt/hrptree/subtree"
)

const (
	blockPresent = 'X'
	blockMissing = '_'
)

// Write renders sub's vertex set over grid to w: a dimensions header
// line, a blank line, one blank-line-terminated layer per combination of
// axes beyond the first two (a single layer for 1-D/2-D grids), each
// layer a grid of blockPresent/blockMissing characters with axis 0 fastest
// and axis 1 next, and a final line with the selected vertex count.
func Write(w io.Writer, grid *hrpgraph.Grid, sub *subtree.State) error {
	bw := bufio.NewWriter(w)

	dims := grid.Dims()
	for i, n := range dims {
		if i > 0 {
			if _, err := bw.WriteString(" "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(bw, n); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("\n\n"); err != nil {
		return err
	}

	sizeX := axisSize(dims, 0)
	sizeY := axisSize(dims, 1)
	numLayers := grid.NumVertices() / (sizeX * sizeY)

	for layer := 0; layer < numLayers; layer++ {
		base := layer * sizeX * sizeY
		for y := 0; y < sizeY; y++ {
			row := base + y*sizeX
			for x := 0; x < sizeX; x++ {
				ch := byte(blockMissing)
				if sub.Has(row + x) {
					ch = blockPresent
				}
				if err := bw.WriteByte(ch); err != nil {
					return err
				}
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(bw, sub.NSelected()); err != nil {
		return err
	}

	return bw.Flush()
}

func axisSize(dims []int, axis int) int {
	if axis >= len(dims) {
		return 1
	}
	return dims[axis]
}

// WriteFile renders sub to path, creating or truncating it.
func WriteFile(path string, grid *hrpgraph.Grid, sub *subtree.State) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %q: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, grid, sub); err != nil {
		return fmt.Errorf("output: write %q: %w", path, err)
	}
	return nil
}
