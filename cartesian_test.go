package charts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dailySeries(n int) Series {
	var (
		start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		ser   = Series{Title: "requests"}
	)
	for i := 0; i < n; i++ {
		ser.Points = append(ser.Points, TimePoint{
			Date:  start.AddDate(0, 0, i),
			Value: float64(100 + i),
		})
	}
	return ser
}

func TestLabelStride_DenseSeries(t *testing.T) {
	// 90 points over 900 logical px: 11 slots, stride 8
	assert.Equal(t, 8, LabelStride(90, 900))
}

func TestLabelStride_Sparse(t *testing.T) {
	assert.Equal(t, 1, LabelStride(5, 900))
	assert.Equal(t, 1, LabelStride(1, 60))
}

func TestLabelStride_Monotonic(t *testing.T) {
	prev := 0
	for n := 1; n <= 200; n++ {
		step := LabelStride(n, 600)
		require.GreaterOrEqual(t, step, prev, "stride shrank at n=%d", n)
		prev = step
	}
}

func TestTickLabels_StrideAndForcedLast(t *testing.T) {
	ser := dailySeries(90)
	labels := make([]string, 0, ser.Len())
	for _, pt := range ser.Points {
		labels = append(labels, pt.Date.Format(dateFormat))
	}
	ticks := TickLabels(labels, NewSlotScale(len(labels), NewRange(0, 900)), 900)

	var indices []int
	for _, tick := range ticks {
		indices = append(indices, tick.Index)
	}
	want := []int{0, 8, 16, 24, 32, 40, 48, 56, 64, 72, 80, 88, 89}
	assert.Equal(t, want, indices)
}

func TestTickLabels_LastNotDuplicated(t *testing.T) {
	labels := make([]string, 9)
	for i := range labels {
		labels[i] = "x"
	}
	// width 80 leaves one slot, stride 9: only index 0 qualifies, 8 is forced
	ticks := TickLabels(labels, NewSlotScale(9, NewRange(0, 80)), 80)

	require.Len(t, ticks, 2)
	assert.Equal(t, 0, ticks[0].Index)
	assert.Equal(t, 8, ticks[1].Index)
}

func TestGridLayout_EvenSpacing(t *testing.T) {
	lines := GridLayout(40, 20, 700, 300, GridLines)

	require.Len(t, lines, 6)
	for i, gl := range lines {
		assert.InDelta(t, 20+float64(i)*60, gl.From.Y, 1e-9)
		assert.InDelta(t, gl.From.Y, gl.To.Y, 1e-9)
		assert.InDelta(t, 40, gl.From.X, 1e-9)
		assert.InDelta(t, 740, gl.To.X, 1e-9)
	}
}

func TestAxisColumn_TopDown(t *testing.T) {
	column := AxisColumn(NewDomain(0, 5000), 10, 250, GridLines, FormatNumber)

	require.Len(t, column, 6)
	assert.Equal(t, "5,000", column[0].Text)
	assert.Equal(t, "0", column[5].Text)
	assert.InDelta(t, 10, column[0].Y, 1e-9)
	assert.InDelta(t, 260, column[5].Y, 1e-9)
}

func TestBarRects_SlotWidth(t *testing.T) {
	var (
		ser  = dailySeries(10)
		xs   = NewSlotScale(10, NewRange(0, 500))
		ys   = NewLinearScale(NewDomain(0, 200), NewRange(0, 300))
		bars = BarRects(ser.Points, xs, ys, "#000000")
	)
	require.Len(t, bars, 10)
	for i, bar := range bars {
		assert.InDelta(t, 30, bar.Dim.W, 1e-9, "bar %d width", i)
		assert.InDelta(t, xs.Center(i), bar.Pos.X+bar.Dim.W/2, 1e-9, "bar %d center", i)
		assert.InDelta(t, 300, bar.Pos.Y+bar.Dim.H, 1e-9, "bar %d baseline", i)
	}
}

func TestLayoutCartesian_DualAxis(t *testing.T) {
	var (
		scores = dailySeries(14)
		counts = dailySeries(14)
		cfg    = Config{
			Kind:    KindDualAxis,
			Width:   900,
			Height:  400,
			Padding: PadAll(40),
		}
	)
	layout := LayoutCartesian([]Series{scores, counts}, cfg, Dashboard8)

	require.Len(t, layout.Lines, 1)
	assert.False(t, layout.Lines[0].Fill)
	assert.Len(t, layout.Lines[0].Points, 14)
	assert.Len(t, layout.Bars, 14)
	assert.Equal(t, Dashboard8[1], layout.Bars[0].Color)
	assert.NotEmpty(t, layout.Left)
	assert.NotEmpty(t, layout.Right)
}

func TestLayoutCartesian_AreaFills(t *testing.T) {
	cfg := Config{
		Kind:    KindArea,
		Width:   600,
		Height:  300,
		Padding: PadAll(30),
	}
	layout := LayoutCartesian([]Series{dailySeries(7)}, cfg, Dashboard8)

	require.Len(t, layout.Lines, 1)
	assert.True(t, layout.Lines[0].Fill)
	assert.Empty(t, layout.Right)
	assert.Empty(t, layout.Bars)
}

func TestLayoutCartesian_ResizeKeepsLogicalOrder(t *testing.T) {
	var (
		series = []Series{dailySeries(4)}
		small  = Config{Kind: KindArea, Width: 400, Height: 300, Padding: PadAll(20)}
		big    = small
	)
	big.Width = 800

	var (
		a = LayoutCartesian(series, small, Dashboard8)
		b = LayoutCartesian(series, big, Dashboard8)
	)
	// only pixel-space coordinates change; counts and logical ordering do not
	require.Equal(t, len(a.Grid), len(b.Grid))
	require.Equal(t, len(a.XTicks), len(b.XTicks))
	for i := range a.XTicks {
		assert.Equal(t, a.XTicks[i].Index, b.XTicks[i].Index)
		assert.Equal(t, a.XTicks[i].Text, b.XTicks[i].Text)
	}
	require.Equal(t, len(a.Lines[0].Points), len(b.Lines[0].Points))
	for i := range a.Lines[0].Points {
		assert.InDelta(t, a.Lines[0].Points[i].Y, b.Lines[0].Points[i].Y, 1e-9)
		if i > 0 {
			assert.Greater(t, b.Lines[0].Points[i].X, b.Lines[0].Points[i-1].X)
		}
	}
	for i, lb := range a.Left {
		assert.Equal(t, lb.Text, b.Left[i].Text)
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "12,345", FormatNumber(12345))
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "12.3", FormatNumber(12.3))
	assert.Equal(t, "60.0", FormatStat(60))
}
