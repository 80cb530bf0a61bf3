package charts

const (
	// LegendSlotHeight is the fixed height of one legend row.
	LegendSlotHeight = 35.0

	// LegendWidth is the fixed column width reserved for the legend.
	LegendWidth = 150.0

	legendSwatch = 12.0
)

type LegendEntry struct {
	Color string
	Label string
	Stat  string
}

type LegendSlot struct {
	LegendEntry
	Y float64
}

// LegendLayout stacks entries in fixed-height slots. Entries past the canvas
// height are laid out anyway; overflow is neither clipped nor paginated.
func LegendLayout(entries []LegendEntry) []LegendSlot {
	all := make([]LegendSlot, 0, len(entries))
	for i, e := range entries {
		all = append(all, LegendSlot{
			LegendEntry: e,
			Y:           float64(i) * LegendSlotHeight,
		})
	}
	return all
}

// LegendFor matches entries to slices or series by ordinal position so the
// legend swatch always shows the color drawn for that position.
func LegendFor(d Dataset, palette Palette) []LegendEntry {
	var entries []LegendEntry
	if len(d.Categories) > 0 {
		for i, pt := range d.Categories {
			entries = append(entries, LegendEntry{
				Color: palette.Color(i),
				Label: pt.Label,
				Stat:  FormatStat(pt.Percent) + "%",
			})
		}
		return entries
	}
	for i, s := range d.Series {
		var stat string
		if n := s.Len(); n > 0 {
			stat = FormatNumber(s.Points[n-1].Value)
		}
		entries = append(entries, LegendEntry{
			Color: palette.Color(i),
			Label: s.Title,
			Stat:  stat,
		})
	}
	return entries
}
