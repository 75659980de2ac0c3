package convert

import (
	"math"
	"sort"
	"strings"
)

// TextItem is a positioned text fragment as delivered by the PDF text layer.
// Y is the baseline vertical coordinate (PDF space, origin bottom-left),
// X the horizontal offset of the fragment.
type TextItem struct {
	Text string
	X    float64
	Y    float64
}

// GroupLines reconstructs reading-order lines from positioned fragments.
// Fragments whose Y coordinate rounds to the same integer belong to one
// line; within a line fragments are ordered by ascending X and joined with
// a single space. Lines are ordered by descending Y, which is top-of-page
// first in PDF coordinates. Empty lines are dropped.
func GroupLines(items []TextItem) []string {
	if len(items) == 0 {
		return nil
	}

	buckets := make(map[int][]TextItem)
	for _, item := range items {
		y := int(math.Round(item.Y))
		buckets[y] = append(buckets[y], item)
	}

	ys := make([]int, 0, len(buckets))
	for y := range buckets {
		ys = append(ys, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ys)))

	lines := make([]string, 0, len(ys))
	for _, y := range ys {
		row := buckets[y]
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })

		parts := make([]string, 0, len(row))
		for _, item := range row {
			parts = append(parts, item.Text)
		}
		line := strings.TrimSpace(strings.Join(parts, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}
