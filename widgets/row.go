package widgets

import (
	"fmt"
	"math"
	"strings"
)

type row struct {
	constraint Constraint
	widgets    []Widget
}

func Row(constraint Constraint, widgets ...Widget) Widget {
	return row{constraint: constraint, widgets: widgets}
}

func (r row) Constraint() Constraint {
	return r.constraint
}

func (r row) Render(renderer Renderer, pos Position, size Size) {
	sizes := make([]int, len(r.widgets))
	flexes := make([]int, len(r.widgets))
	for i, widget := range r.widgets {
		c := widget.Constraint()
		sizes[i] = c.Width
		flexes[i] = c.X
	}
	widths := calcSizes(size.Width, sizes, flexes)
	x := pos.X
	for i, widget := range r.widgets {
		widget.Render(renderer, Position{X: x, Y: pos.Y}, Size{Width: widths[i], Height: size.Height})
		x += widths[i]
	}
	if x < pos.X+size.Width {
		fill(renderer, Position{X: x, Y: pos.Y}, Size{Width: pos.X + size.Width - x, Height: size.Height})
	}
}

func (r row) String() string { return toString(r) }

func (r row) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sRow(%s)\n", offset, r.constraint)
	for _, widget := range r.widgets {
		widget.ToString(buf, offset+"| ")
	}
}

// calcSizes shrinks the largest entries first when the sizes do not fit
// and hands extra space out in proportion to the flexes.
func calcSizes(targetSize int, sizes []int, flexes []int) []int {
	if targetSize < 0 {
		targetSize = 0
	}
	result := make([]int, len(sizes))
	totalSize, totalFlex := 0, 0
	for i, size := range sizes {
		result[i] = size
		totalSize += size
		totalFlex += flexes[i]
	}
	for totalSize > targetSize {
		idx := 0
		maxSize := result[0]
		for i, size := range result {
			if maxSize < size {
				maxSize = size
				idx = i
			}
		}
		result[idx]--
		totalSize--
	}

	if totalFlex == 0 || totalSize >= targetSize {
		return result
	}

	diff := targetSize - totalSize
	for i, flex := range flexes {
		rate := float64(diff*flex) / float64(totalFlex)
		result[i] += int(math.Floor(rate))
	}
	totalSize = 0
	for _, size := range result {
		totalSize += size
	}
	for i := range result {
		if totalSize == targetSize {
			break
		}
		if flexes[i] > 0 {
			result[i]++
			totalSize++
		}
	}
	return result
}
