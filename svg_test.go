package charts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVGSurface_Flush(t *testing.T) {
	rdr := NewRenderer(nil, nil)
	cfg := Config{
		Kind:    KindPie,
		Width:   400,
		Height:  400,
		Padding: PadAll(20),
	}
	ds := CategoryDataset(
		CategoryPoint{Label: "coding", Percent: 60},
		CategoryPoint{Label: "testing", Percent: 40},
	)
	surf, err := rdr.Render(ds, cfg)
	require.NoError(t, err)

	svg, ok := surf.(*SVGSurface)
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, svg.Flush(&buf))
	assert.True(t, strings.Contains(buf.String(), "<svg"), "missing svg root element")
}

func TestSVGSurface_ClearDropsFrame(t *testing.T) {
	surf := NewSVGSurface(200, 200, 1)
	surf.Rect(NewPos(10, 10), NewDim(50, 50), "#ff0000")

	var before bytes.Buffer
	require.NoError(t, surf.Flush(&before))

	surf.Clear(200, 200)
	var after bytes.Buffer
	require.NoError(t, surf.Flush(&after))

	assert.Less(t, after.Len(), before.Len())
}

func TestSVGSurface_ZeroSizeDrawsNothing(t *testing.T) {
	surf := NewSVGSurface(0, 0, 1)

	var empty bytes.Buffer
	require.NoError(t, surf.Flush(&empty))

	surf.Rect(NewPos(0, 0), NewDim(10, 10), "#ff0000")
	surf.Text("hello", NewPos(5, 5), 12, "#000000", AnchorStart)

	var again bytes.Buffer
	require.NoError(t, surf.Flush(&again))
	assert.Equal(t, empty.String(), again.String())
}
