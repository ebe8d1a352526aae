package gantt

import (
	"sort"

	"github.com/apsystem/apsview/internal/domain"
)

// LotItems builds one chart row per lot, ordered by lot id, with the steps
// of each lot in step order. Rows take colours from the pool by index.
func LotItems(steps []domain.StepResult) []Item {
	sorted := append([]domain.StepResult(nil), steps...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].LotID != sorted[j].LotID {
			return sorted[i].LotID < sorted[j].LotID
		}
		return sorted[i].StepIdx < sorted[j].StepIdx
	})

	colors := lotColors(sorted)
	items := make([]Item, 0, len(sorted))
	for _, s := range sorted {
		items = append(items, Item{
			ID:    s.LotID + "/" + s.Step,
			Row:   s.LotID,
			Label: s.Step + "@" + s.Machine,
			Start: s.Start,
			End:   s.End,
			Color: colors[s.LotID],
		})
	}
	return items
}

// MachineItems builds one chart row per machine. Bars keep the colour of
// their lot so a lot can be followed across machines.
func MachineItems(steps []domain.StepResult) []Item {
	colors := lotColors(steps)

	sorted := append([]domain.StepResult(nil), steps...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Machine != sorted[j].Machine {
			return sorted[i].Machine < sorted[j].Machine
		}
		return sorted[i].Start.Before(sorted[j].Start)
	})

	items := make([]Item, 0, len(sorted))
	for _, s := range sorted {
		items = append(items, Item{
			ID:    s.Machine + "/" + s.LotID + "/" + s.Step,
			Row:   s.Machine,
			Label: s.LotID + " " + s.Step,
			Start: s.Start,
			End:   s.End,
			Color: colors[s.LotID],
		})
	}
	return items
}

// lotColors assigns pool colours to lots in sorted lot id order, wrapping
// around once the pool is exhausted.
func lotColors(steps []domain.StepResult) map[string]string {
	seen := make(map[string]bool)
	var lots []string
	for _, s := range steps {
		if !seen[s.LotID] {
			seen[s.LotID] = true
			lots = append(lots, s.LotID)
		}
	}
	sort.Strings(lots)

	pool := ColorPool()
	colors := make(map[string]string, len(lots))
	for i, lot := range lots {
		colors[lot] = pool[i%len(pool)]
	}
	return colors
}
