package charts

type Palette []string

var (
	Dashboard8 Palette
	Category10 Palette
)

func init() {
	Dashboard8 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa19c755f")
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

// Color cycles through the palette so that a given ordinal position always
// yields the same color across renders.
func (p Palette) Color(i int) string {
	if len(p) == 0 {
		return ""
	}
	return p[i%len(p)]
}
