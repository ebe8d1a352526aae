package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/apsystem/apsview/internal/cli/formatter"
	"github.com/apsystem/apsview/internal/domain"
	"github.com/apsystem/apsview/internal/gantt"
	"github.com/apsystem/apsview/internal/schedulejob"
	"github.com/apsystem/apsview/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// debugPaneLines is how many of the newest debug lines are shown.
const debugPaneLines = 6

type createJobLoadedMsg struct {
	lots      []*domain.Lot
	models    []domain.PlanModel
	schedules []domain.ScheduleInfo
	err       error
}

type jobCreatedMsg struct {
	info *domain.ScheduleInfo
	err  error
}

type prioritiesSavedMsg struct {
	count int
	err   error
}

// createJobView is the schedule-job editor. All collections live in the
// schedulejob.State; the view keeps only the cursor and input widgets.
type createJobView struct {
	state *SharedState
	sj    *schedulejob.State

	cursor         int
	selectorCursor int
	filter         textinput.Model
	filtering      bool
	loading        bool
	busy           bool
	err            error
}

func newCreateJobView(state *SharedState) *createJobView {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "product or lot id"
	ti.CharLimit = 64

	return &createJobView{
		state:   state,
		sj:      schedulejob.New(schedulejob.WithConsole(state.App.Console)),
		filter:  ti,
		loading: true,
	}
}

func (v *createJobView) ID() ViewID    { return ViewCreateScheduleJob }
func (v *createJobView) Title() string { return "Create Schedule Job" }

// CapturesInput keeps esc and letters inside the view while the filter or
// the schedule selector is open.
func (v *createJobView) CapturesInput() bool {
	return v.filtering || v.sj.ShowScheduleSelector()
}

func (v *createJobView) ShortHelp() []key.Binding {
	if v.filtering {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "keep filter")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
		}
	}
	if v.sj.ShowScheduleSelector() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "choose")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		key.NewBinding(key.WithKeys("+", "-"), key.WithHelp("+/-", "priority")),
		key.NewBinding(key.WithKeys("1"), key.WithHelp("1-9", "toggle model")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "schedule")),
		key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "save")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "create")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear log")),
	}
}

func (v *createJobView) Init() tea.Cmd { return v.load() }

func (v *createJobView) load() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		lots, err := app.Jobs.LoadLots(ctx)
		if err != nil {
			return createJobLoadedMsg{err: err}
		}
		models, err := app.Jobs.LoadModels(ctx)
		if err != nil {
			return createJobLoadedMsg{err: err}
		}
		schedules, err := app.Jobs.ListSchedules(ctx)
		if err != nil {
			return createJobLoadedMsg{err: err}
		}
		return createJobLoadedMsg{lots: lots, models: models, schedules: schedules}
	}
}

func (v *createJobView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case createJobLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err != nil {
			v.sj.AddDebugLog("load failed: " + msg.err.Error())
			return v, nil
		}
		v.sj.SetLots(msg.lots)
		v.sj.SetModels(msg.models)
		v.sj.SetAvailableSchedules(msg.schedules)
		v.sj.SetScheduleID(v.state.ScheduleID)
		v.cursor = 0
		v.sj.AddDebugLog(fmt.Sprintf("loaded %d lots, %d models, %d schedules",
			len(msg.lots), len(msg.models), len(msg.schedules)))
		return v, nil

	case jobCreatedMsg:
		v.busy = false
		if msg.err != nil {
			v.sj.AddDebugLog("create failed: " + msg.err.Error())
			return v, nil
		}
		v.sj.SetScheduleID(msg.info.ScheduleID)
		v.sj.SetAvailableSchedules(append([]domain.ScheduleInfo{*msg.info}, v.sj.AvailableSchedules()...))
		v.state.ScheduleID = msg.info.ScheduleID
		v.sj.AddDebugLog("created schedule " + msg.info.ScheduleID)
		return v, refreshViews()

	case prioritiesSavedMsg:
		v.busy = false
		if msg.err != nil {
			v.sj.AddDebugLog("save failed: " + msg.err.Error())
			return v, nil
		}
		v.sj.AddDebugLog(fmt.Sprintf("saved priorities of %d lots", msg.count))
		return v, nil

	case tea.KeyMsg:
		switch {
		case v.filtering:
			return v.updateFilter(msg)
		case v.sj.ShowScheduleSelector():
			return v.updateSelector(msg)
		}
		return v.updateNormal(msg)
	}

	if v.filtering {
		var cmd tea.Cmd
		v.filter, cmd = v.filter.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *createJobView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if v.loading {
		return v, nil
	}
	switch s := msg.String(); s {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.sj.FilteredLots())-1 {
			v.cursor++
		}
	case "/":
		v.filtering = true
		v.filter.SetValue(v.sj.ProductFilter())
		v.filter.CursorEnd()
		return v, v.filter.Focus()
	case "+", "=":
		v.shiftPriority(schedulejob.PriorityStep)
	case "-", "_":
		v.shiftPriority(-schedulejob.PriorityStep)
	case "s":
		v.openSelector()
	case "x":
		v.sj.ClearDebugLogs()
	case "w":
		return v, v.savePriorities()
	case "c":
		return v, v.createJob()
	default:
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			v.toggleModel(int(s[0] - '1'))
		}
	}
	return v, nil
}

// updateFilter applies the filter text on every keystroke.
func (v *createJobView) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.filtering = false
		v.filter.Blur()
		v.filter.Reset()
		v.sj.SetProductFilter("")
		v.cursor = 0
		return v, nil
	case tea.KeyEnter:
		v.filtering = false
		v.filter.Blur()
		v.sj.AddDebugLog(fmt.Sprintf("filter %q matches %d lots", v.sj.ProductFilter(), len(v.sj.FilteredLots())))
		return v, nil
	}
	var cmd tea.Cmd
	v.filter, cmd = v.filter.Update(msg)
	v.sj.SetProductFilter(v.filter.Value())
	v.cursor = 0
	return v, cmd
}

func (v *createJobView) updateSelector(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	schedules := v.sj.AvailableSchedules()
	switch msg.String() {
	case "up", "k":
		if v.selectorCursor > 0 {
			v.selectorCursor--
			v.pickTemp(schedules)
		}
	case "down", "j":
		if v.selectorCursor < len(schedules)-1 {
			v.selectorCursor++
			v.pickTemp(schedules)
		}
	case "enter":
		id := ""
		if temp := v.sj.TempScheduleID(); temp != nil {
			id = *temp
		}
		v.sj.SetScheduleID(id)
		v.closeSelector()
		v.state.ScheduleID = id
		v.sj.AddDebugLog("active schedule " + v.state.ScheduleLabel())
		return v, refreshViews()
	case "esc":
		v.closeSelector()
	}
	return v, nil
}

func (v *createJobView) openSelector() {
	schedules := v.sj.AvailableSchedules()
	if len(schedules) == 0 {
		v.sj.AddDebugLog("no schedules to choose from")
		return
	}
	v.selectorCursor = 0
	for i, s := range schedules {
		if s.ScheduleID == v.sj.ScheduleID() {
			v.selectorCursor = i
		}
	}
	v.pickTemp(schedules)
	v.sj.SetShowScheduleSelector(true)
}

func (v *createJobView) pickTemp(schedules []domain.ScheduleInfo) {
	id := schedules[v.selectorCursor].ScheduleID
	v.sj.SetTempScheduleID(&id)
}

func (v *createJobView) closeSelector() {
	v.sj.SetShowScheduleSelector(false)
	v.sj.SetTempScheduleID(nil)
}

func (v *createJobView) shiftPriority(delta int) {
	n := len(v.sj.FilteredLots())
	if delta > 0 {
		v.sj.IncreasePriority()
	} else {
		v.sj.DecreasePriority()
	}
	if n > 0 {
		v.sj.AddDebugLog(fmt.Sprintf("priority %+d on %d lots", delta, n))
	}
}

// toggleModel flips the checkbox binding of the i-th model. The model list is
// replaced as a whole, never edited in place.
func (v *createJobView) toggleModel(i int) {
	models := v.sj.Models()
	if i >= len(models) {
		return
	}
	next := make([]domain.PlanModel, len(models))
	copy(next, models)
	if schedulejob.IsChecked(next[i].Selected) {
		next[i].Selected = ""
	} else {
		next[i].Selected = "1"
	}
	v.sj.SetModels(next)
	v.sj.AddDebugLog(fmt.Sprintf("model %s %s", next[i].Name, checkedWord(next[i].Selected)))
}

func checkedWord(binding string) string {
	if schedulejob.IsChecked(binding) {
		return "selected"
	}
	return "cleared"
}

func (v *createJobView) savePriorities() tea.Cmd {
	if v.busy {
		return nil
	}
	v.busy = true
	app, lots := v.state.App, v.sj.Snapshot()
	return func() tea.Msg {
		err := app.Jobs.SaveLotPriorities(context.Background(), lots)
		return prioritiesSavedMsg{count: len(lots), err: err}
	}
}

func (v *createJobView) createJob() tea.Cmd {
	if v.busy {
		return nil
	}
	req := service.CreateScheduleJobRequest{
		Lots:   v.sj.Snapshot(),
		Models: v.sj.SelectedModels(),
		User:   v.state.App.User,
	}
	v.busy = true
	v.sj.AddDebugLog(fmt.Sprintf("creating schedule job: %d lots, %d models", len(req.Lots), len(req.Models)))
	app := v.state.App
	return func() tea.Msg {
		info, err := app.Jobs.CreateScheduleJob(context.Background(), req)
		return jobCreatedMsg{info: info, err: err}
	}
}

func (v *createJobView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}

	var b strings.Builder
	if v.err != nil {
		b.WriteString("\n  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
	}

	b.WriteString(formatter.Header("Lots") + "\n")
	if f := v.sj.ProductFilter(); f != "" {
		b.WriteString(formatter.Dim(fmt.Sprintf("filter %q", f)) + "\n")
	}
	if v.filtering {
		b.WriteString(v.filter.View() + "\n")
	}
	b.WriteString(v.renderLots())

	b.WriteString("\n" + formatter.Header("Plan models") + "\n")
	for i, m := range v.sj.Models() {
		label := fmt.Sprintf("%d %s %s", i+1, formatter.Checkbox(schedulejob.IsChecked(m.Selected)), m.Name)
		if m.Description != "" {
			label += "  " + formatter.Dim(m.Description)
		}
		b.WriteString(label + "\n")
	}
	if len(v.sj.Models()) == 0 {
		b.WriteString(formatter.Dim("No plan models.") + "\n")
	}

	b.WriteString("\n" + formatter.Header("Schedule") + "  ")
	if id := v.sj.ScheduleID(); id != "" {
		b.WriteString(formatter.StyleGreen.Render(id))
	} else {
		b.WriteString(formatter.Dim("latest"))
	}
	b.WriteString("\n")
	if v.sj.ShowScheduleSelector() {
		b.WriteString(v.renderSelector())
	}

	b.WriteString("\n" + formatter.Header("Debug log") + "\n")
	logs := v.sj.DebugLogs()
	if len(logs) > debugPaneLines {
		logs = logs[len(logs)-debugPaneLines:]
	}
	for _, l := range logs {
		b.WriteString(formatter.Dim(formatter.Truncate(l, max(v.state.Width, 40))) + "\n")
	}
	return b.String()
}

func (v *createJobView) renderLots() string {
	lots := v.sj.FilteredLots()
	if len(lots) == 0 {
		return formatter.Dim("No lots match.") + "\n"
	}
	var b strings.Builder
	for i, l := range lots {
		due := gantt.FormatDate(l.DueDate)
		line := fmt.Sprintf("%-10s %-12s %5s  %s", l.LotID, l.Product, strconv.Itoa(l.Priority), due)
		if i == v.cursor {
			b.WriteString(formatter.StyleHeader.Render("▸ ") + formatter.Bold(line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

func (v *createJobView) renderSelector() string {
	temp := ""
	if t := v.sj.TempScheduleID(); t != nil {
		temp = *t
	}
	var b strings.Builder
	for _, s := range v.sj.AvailableSchedules() {
		line := fmt.Sprintf("%-14s %s", s.ScheduleID, gantt.FormatDate(s.CreateDate))
		if s.ScheduleID == temp {
			b.WriteString("  " + formatter.StyleHeader.Render("▸ ") + formatter.Bold(line) + "\n")
		} else {
			b.WriteString("    " + formatter.Dim(line) + "\n")
		}
	}
	return b.String()
}
