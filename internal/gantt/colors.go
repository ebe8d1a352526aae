package gantt

var colorPool = [...]string{
	"#FF9999", "#99CCFF", "#99FF99", "#FFCC99", "#CC99FF", "#FFB6C1", "#FFD700",
	"#7FFFD4", "#FF69B4", "#20B2AA", "#87CEFA", "#32CD32", "#FFA07A", "#9370DB",
	"#40E0D0", "#FF6347", "#8FBC8F", "#6495ED", "#F08080", "#48D1CC", "#BA55D3",
	"#BDB76B", "#00CED1", "#FF4500", "#228B22", "#8B0000",
}

// ColorPool returns the 26 row colours in their fixed order. Each call
// returns a fresh slice. Callers index into it and wrap on overflow.
func ColorPool() []string {
	out := make([]string, len(colorPool))
	copy(out, colorPool[:])
	return out
}
