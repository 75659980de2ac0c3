package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupLines(t *testing.T) {
	tests := []struct {
		name  string
		items []TextItem
		want  []string
	}{
		{
			name: "rows ordered top down, fragments left to right",
			items: []TextItem{
				{Text: "LAMHANDI", X: 120, Y: 700},
				{Text: "TAHA", X: 50, Y: 700},
				{Text: "taha@example.com", X: 50, Y: 680},
			},
			want: []string{"TAHA LAMHANDI", "taha@example.com"},
		},
		{
			name: "fractional baselines round to the same row",
			items: []TextItem{
				{Text: "Software", X: 10, Y: 500.4},
				{Text: "Engineer", X: 80, Y: 499.6},
			},
			want: []string{"Software Engineer"},
		},
		{
			name: "half unit apart lands in different rows",
			items: []TextItem{
				{Text: "upper", X: 10, Y: 500.6},
				{Text: "lower", X: 10, Y: 500.4},
			},
			want: []string{"upper", "lower"},
		},
		{
			name: "blank fragments produce no lines",
			items: []TextItem{
				{Text: "  ", X: 10, Y: 100},
				{Text: "", X: 20, Y: 100},
			},
			want: []string{},
		},
		{
			name:  "no items",
			items: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GroupLines(tt.items)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGroupLinesStableWithinRow(t *testing.T) {
	// Fragments at the same X keep their input order.
	items := []TextItem{
		{Text: "first", X: 10, Y: 100},
		{Text: "second", X: 10, Y: 100},
	}
	assert.Equal(t, []string{"first second"}, GroupLines(items))
}
