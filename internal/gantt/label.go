package gantt

import (
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// The chart uses %i for minutes and %W for the ISO week; strftime spells
// those %M and %V.
var directiveReplacer = strings.NewReplacer("%i", "%M", "%W", "%V")

// FormatLabel renders t with a chart date format such as "%Y-%m-%d" or
// "第 %W 週".
func FormatLabel(format string, t time.Time) string {
	return strftime.Format(directiveReplacer.Replace(format), t)
}
