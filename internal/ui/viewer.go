package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"posixtest/internal/domain"
	"posixtest/internal/storage"
)

// Viewer browses a report's non-passing results in an interactive TUI
type Viewer struct{}

// NewViewer creates a new Viewer
func NewViewer() *Viewer {
	return &Viewer{}
}

// CategoryTitle turns a result tag into a display title ("NO_COMPILE" -> "No Compile")
func CategoryTitle(result domain.Result) string {
	words := strings.ReplaceAll(strings.ToLower(string(result)), "_", " ")
	return cases.Title(language.English).String(words)
}

// viewFilters is the Tab cycle: every category, then each one alone
func viewFilters() []domain.Result {
	return append([]domain.Result{""}, domain.Categories...)
}

// failing returns the non-passing results matching filter, grouped in category order
func failing(results domain.ResultSet, filter domain.Result) domain.ResultSet {
	var out domain.ResultSet
	for _, category := range domain.Categories {
		if filter != "" && category != filter {
			continue
		}
		out = append(out, results.ByResult(category)...)
	}
	return out
}

// View runs the TUI until the user quits
func (v *Viewer) View(doc storage.Document) error {
	results := doc.Results()
	if results.Failed() == 0 {
		color.Green("✓ All %d tests passed!", len(results))
		return nil
	}

	filters := viewFilters()
	filterIndex := 0
	var shown domain.ResultSet

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 2, 0, false).
		AddItem(detailsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		filter := "all categories"
		if f := filters[filterIndex]; f != "" {
			filter = CategoryTitle(f)
		}
		headerView.SetText(fmt.Sprintf(
			" %d total, [green]%d passed[white], [red]%d failed[white] | showing [yellow]%s[white] (%d) | ↑↓ navigate, Tab filter, → details, q quit ",
			len(results), results.Passed(), results.Failed(), filter, len(shown)))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(shown) {
			statsView.SetText("")
			detailsView.SetText("")
			return
		}
		r := shown[index]
		statsView.SetText(fmt.Sprintf("[cyan]name:[white] [yellow]%s[white]\n[cyan]result:[white] [red]%s[white]", tview.Escape(r.Name), r.Result))
		if r.Output == "" {
			detailsView.SetText("[gray](no output)[white]")
		} else {
			detailsView.SetText(tview.Escape(r.Output))
		}
	}

	rebuild := func() {
		shown = failing(results, filters[filterIndex])
		list.Clear()
		for i, r := range shown {
			list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s [gray](%s)[white]", i+1, tview.Escape(r.Name), r.Result), "", 0, nil)
		}
		updateHeader()
		updateDetails()
	}

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab:
			filterIndex = (filterIndex + 1) % len(filters)
			rebuild()
			return nil
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	rebuild()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
