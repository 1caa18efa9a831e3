package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/tourbook/internal/app/template"
	"github.com/aalvaropc/tourbook/internal/domain"
	"github.com/aalvaropc/tourbook/internal/usecase"
)

type screen int

const (
	screenHome screen = iota
	screenWizard
	screenList
	screenDetail
	screenDelete
)

type wizardStep int

const (
	stepVariant wizardStep = iota
	stepName
	stepUnit
	stepDuration
	stepStops
	stepMethod
	stepConfirm
)

const (
	menuNewTour = "New tour"
	menuSaved   = "Saved tours"
	menuDelete  = "Delete tour"
	menuQuit    = "Quit"
)

type menuItem struct {
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type variantItem struct {
	v domain.Variant
	n int
}

func (i variantItem) Title() string       { return fmt.Sprintf("%d. %s", i.n, i.v.Label()) }
func (i variantItem) Description() string { return i.v.LabelUK() }
func (i variantItem) FilterValue() string { return i.v.Label() }

type model struct {
	theme Theme
	deps  Deps
	ctx   context.Context

	scr      screen
	menu     list.Model
	variants list.Model
	input    textinput.Model

	step    wizardStep
	variant domain.Variant
	draft   *usecase.TourDraft
	method  domain.CostMethod

	detail      domain.Tour
	detailIndex int

	busy  bool
	toast string
}

func Run(ctx context.Context, deps Deps) error {
	if deps.Catalog == nil {
		return errors.New("tui: catalog is nil")
	}
	m := newModel(ctx, deps)
	m.deps.Logger.Info("tui.start", "workspace", deps.WorkspaceRoot, "store", deps.StorePath, "tours", deps.Catalog.Count())

	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func newModel(ctx context.Context, deps Deps) model {
	if ctx == nil {
		ctx = context.Background()
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	items := []list.Item{
		menuItem{menuNewTour, "Pick a type, set duration and stops, get the cost"},
		menuItem{menuSaved, "Browse the catalog and open a tour by number"},
		menuItem{menuDelete, "Remove a tour by its number"},
		menuItem{menuQuit, "Exit tourbook"},
	}

	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "tourbook"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	menu.SetShowHelp(false)

	vitems := make([]list.Item, 0, len(domain.Variants()))
	for i, v := range domain.Variants() {
		vitems = append(vitems, variantItem{v: v, n: i + 1})
	}
	variants := list.New(vitems, list.NewDefaultDelegate(), 0, 0)
	variants.Title = "Tour type"
	variants.SetShowStatusBar(false)
	variants.SetFilteringEnabled(false)
	variants.SetShowHelp(false)

	in := textinput.New()
	in.CharLimit = 64

	return model{
		theme:    DefaultTheme(),
		deps:     deps,
		ctx:      ctx,
		scr:      screenHome,
		menu:     menu,
		variants: variants,
		input:    in,
		toast:    loadNotice(deps.LoadResult),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		m.variants.SetSize(w-4, h-12)
		m.input.Width = w - 12
		return m, nil

	case tourSavedMsg:
		return m.onSaved(msg), nil

	case tourDeletedMsg:
		return m.onDeleted(msg), nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		m.toast = ""

		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenWizard:
			return m.updateWizard(msg)
		case screenList:
			return m.updateList(msg)
		case screenDetail:
			return m.updateDetail(msg)
		case screenDelete:
			return m.updateDelete(msg)
		}
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch s := msg.String(); s {
	case "q":
		return m, tea.Quit

	case "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		return m.open(it.title)

	case "1", "2", "3", "4":
		idx := int(s[0] - '1')
		items := m.menu.Items()
		if idx >= len(items) {
			return m, nil
		}
		m.menu.Select(idx)
		return m.open(items[idx].(menuItem).title)
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) open(title string) (tea.Model, tea.Cmd) {
	switch title {
	case menuNewTour:
		m.scr = screenWizard
		m.step = stepVariant
		m.draft = nil
		m.variants.Select(0)
		return m, nil
	case menuSaved:
		m.scr = screenList
		return m, m.resetInput("Number to view, 0 to go back")
	case menuDelete:
		m.scr = screenDelete
		return m, m.resetInput("Number to delete, 0 to go back")
	case menuQuit:
		return m, tea.Quit
	}
	return m, nil
}

func (m model) updateWizard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.goHome()
		m.toast = "Cancelled"
		return m, nil
	}

	enter := msg.String() == "enter"

	switch m.step {
	case stepVariant:
		s := msg.String()
		if enter {
			if it, ok := m.variants.SelectedItem().(variantItem); ok {
				return m.chooseVariant(it.v)
			}
			return m, nil
		}
		if len(s) == 1 && s >= "1" && s <= "9" {
			if v, err := domain.ParseVariant(s); err == nil {
				return m.chooseVariant(v)
			}
		}
		var cmd tea.Cmd
		m.variants, cmd = m.variants.Update(msg)
		return m, cmd

	case stepName:
		if enter {
			name, err := domain.ParseName(m.input.Value())
			if err != nil {
				m.toast = userMessage(err)
				m.input.Reset()
				return m, nil
			}
			m.draft = usecase.CreateTour(m.variant, name)
			m.step = stepUnit
			m.input.Blur()
			return m, nil
		}

	case stepUnit:
		switch msg.String() {
		case "y", "h":
			m.draft.SetDurationUnit(true)
		case "n", "d":
			m.draft.SetDurationUnit(false)
		default:
			return m, nil
		}
		m.step = stepDuration
		return m, m.resetInput("e.g. 3 or 2,5")

	case stepDuration:
		if enter {
			if err := m.draft.SetDuration(m.input.Value()); err != nil {
				m.toast = userMessage(err)
				m.input.Reset()
				return m, nil
			}
			m.step = stepStops
			return m, m.resetInput("0")
		}

	case stepStops:
		if enter {
			value := m.input.Value()
			if strings.TrimSpace(value) == "" {
				value = "0"
			}
			if err := m.draft.SetStops(value); err != nil {
				m.toast = userMessage(err)
				m.input.Reset()
				return m, nil
			}
			m.input.Blur()
			if m.draft.Tour().IsInHours {
				return m.price(domain.CostDurationOnly)
			}
			m.step = stepMethod
			return m, nil
		}

	case stepMethod:
		switch msg.String() {
		case "1":
			return m.price(domain.CostDurationOnly)
		case "2":
			return m.price(domain.CostDurationAndStops)
		}
		return m, nil

	case stepConfirm:
		switch msg.String() {
		case "y", "enter":
			m.busy = true
			return m, cmdSaveTour(m.ctx, m.deps.Catalog, m.draft.Tour())
		case "n":
			m.goHome()
			m.toast = "Tour not saved"
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) chooseVariant(v domain.Variant) (tea.Model, tea.Cmd) {
	m.variant = v
	m.step = stepName
	return m, m.resetInput(v.Label())
}

// price runs the chosen formula; hours tours always use the hourly rate.
func (m model) price(method domain.CostMethod) (tea.Model, tea.Cmd) {
	cost, err := m.draft.ComputeCost(method)
	if err != nil {
		m.toast = userMessage(err)
		m.step = stepDuration
		return m, m.resetInput("e.g. 3 or 2,5")
	}
	m.method = method
	m.step = stepConfirm
	m.deps.Logger.Debug("tui.priced", "type", string(m.variant), "method", method.String(), "cost", cost)
	return m, nil
}

func (m model) onSaved(msg tourSavedMsg) model {
	m.busy = false
	m.goHome()

	if msg.err != nil {
		m.deps.Logger.Error("tui.save.failed", "id", msg.tour.ID, "err", msg.err)
		m.toast = userMessage(msg.err)
		return m
	}
	m.toast = fmt.Sprintf("Saved as #%d", msg.index)
	return m
}

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.goHome()
		return m, nil
	case "enter":
		if backRequested(m.input.Value()) {
			m.goHome()
			return m, nil
		}
		idx, err := parseNumber(m.input.Value())
		if err == nil {
			var t domain.Tour
			if t, err = m.deps.Catalog.Get(idx); err == nil {
				m.detail = t
				m.detailIndex = idx
				m.scr = screenDetail
				m.input.Blur()
				return m, nil
			}
		}
		m.toast = userMessage(err)
		m.input.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "b":
		m.scr = screenList
		return m, m.resetInput("Number to view, 0 to go back")
	}
	return m, nil
}

func (m model) updateDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.goHome()
		return m, nil
	case "enter":
		if backRequested(m.input.Value()) {
			m.goHome()
			return m, nil
		}
		if m.deps.Catalog.Count() == 0 {
			m.toast = "No saved tours"
			m.input.Reset()
			return m, nil
		}
		idx, err := parseNumber(m.input.Value())
		if err != nil {
			m.toast = userMessage(err)
			m.input.Reset()
			return m, nil
		}
		m.busy = true
		return m, cmdDeleteTour(m.ctx, m.deps.Catalog, idx)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) onDeleted(msg tourDeletedMsg) model {
	m.busy = false
	m.input.Reset()

	if msg.err != nil {
		m.deps.Logger.Warn("tui.delete.failed", "index", msg.index, "err", msg.err)
		m.toast = userMessage(msg.err)
		return m
	}
	m.toast = fmt.Sprintf("Deleted %q", msg.tour.Name)
	return m
}

func (m *model) goHome() {
	m.scr = screenHome
	m.step = stepVariant
	m.draft = nil
	m.input.Blur()
	m.input.Reset()
}

func (m *model) resetInput(placeholder string) tea.Cmd {
	m.input.Reset()
	m.input.Placeholder = placeholder
	return m.input.Focus()
}

// backRequested reports the "0" entry that leaves a number prompt.
func backRequested(s string) bool {
	return strings.TrimSpace(s) == "0"
}

func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &domain.ValidationError{Field: "number", Reason: domain.ReasonNotAnInteger, Input: s}
	}
	return n, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("tourbook") + "\n" +
		m.theme.Subtitle.Render("Plan tours, price them and keep a catalog") + "\n"

	banner := ""
	if m.deps.StorePath != "" {
		banner = m.theme.Help.Render("Store: "+m.deps.StorePath) + "\n"
	}
	if m.toast != "" {
		banner += m.theme.Toast.Render(m.toast) + "\n"
	}

	var body string
	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • 1-4 jump • q quit")
		body = m.theme.Card.Render(m.menu.View()) + "\n" + help

	case screenWizard:
		body = m.viewWizard()

	case screenList:
		body = m.theme.Card.Render(
			m.theme.Title.Render(menuSaved) + "\n\n" +
				renderRows(m.deps.Catalog.List(), m.deps.Config) + "\n\n" +
				m.input.View(),
		) + "\n" + m.theme.Help.Render("enter open • esc back")

	case screenDetail:
		body = m.theme.Card.Render(renderDetail(m.detailIndex, m.detail, currencyOf(m.deps.Config))) +
			"\n" + m.theme.Help.Render("esc/enter back")

	case screenDelete:
		body = m.theme.Card.Render(
			m.theme.Title.Render(menuDelete) + "\n\n" +
				renderRows(m.deps.Catalog.List(), m.deps.Config) + "\n\n" +
				m.input.View(),
		) + "\n" + m.theme.Help.Render("enter delete • esc back")

	default:
		body = "unknown state"
	}

	return wrap.Render(header + "\n" + banner + "\n" + body)
}

func (m model) viewWizard() string {
	if m.step == stepVariant {
		return m.theme.Card.Render(m.variants.View()) + "\n" +
			m.theme.Help.Render("↑/↓ navigate • enter or 1-9 choose • esc cancel")
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(menuNewTour + ": " + m.variant.Label()))
	b.WriteString("\n\n")

	if m.draft != nil {
		t := m.draft.Tour()
		fmt.Fprintf(&b, "Name:     %s\n", t.Name)
		if m.step > stepUnit {
			fmt.Fprintf(&b, "Unit:     %s\n", t.UnitLabel())
		}
		if m.step > stepDuration {
			fmt.Fprintf(&b, "Duration: %s %s\n", template.FormatNumber(t.Duration), t.UnitLabel())
		}
		if m.step > stepStops {
			fmt.Fprintf(&b, "Stops:    %d\n", t.Stops)
		}
		b.WriteString("\n")
	}

	switch m.step {
	case stepName:
		b.WriteString("Name (empty keeps the type name):\n")
		b.WriteString(m.input.View())
	case stepUnit:
		b.WriteString("Is the duration in hours? (y/n)")
	case stepDuration:
		b.WriteString("Duration:\n")
		b.WriteString(m.input.View())
	case stepStops:
		b.WriteString("Number of stops:\n")
		b.WriteString(m.input.View())
	case stepMethod:
		b.WriteString("Cost method:\n  1. By duration\n  2. By duration and stops")
	case stepConfirm:
		t := m.draft.Tour()
		b.WriteString(t.PlanningMessage())
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "Priced:   %s\n", methodLabel(t, m.method))
		b.WriteString("Total cost: ")
		b.WriteString(m.theme.Cost.Render(template.FormatNumber(t.Cost) + " " + currencyOf(m.deps.Config)))
		b.WriteString("\n\nSave this tour? (y/n)")
	}

	return m.theme.Card.Render(b.String()) + "\n" + m.theme.Help.Render("enter next • esc cancel")
}
