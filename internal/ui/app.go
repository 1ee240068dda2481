package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/epeers/gradecalc/internal/calc"
)

// Limits bound the record count selectors.
type Limits struct {
	MaxSubjects  int
	MaxSemesters int
}

// BuildMainWindow creates the main window showing the calculator menu.
// Each calculator screen replaces the window content and returns to the menu on Back.
func BuildMainWindow(app fyne.App, limits Limits) fyne.Window {
	win := app.NewWindow("Course Calculator")
	win.Resize(fyne.NewSize(420, 720))

	percentage := calc.NewPercentageEngine(limits.MaxSubjects)
	cgpa := calc.NewCGPAEngine(limits.MaxSemesters)
	prefs := app.Preferences()

	var showHome func()
	showForm := func(cfg screenConfig) {
		form := newRecordForm(cfg, win, prefs, showHome)
		win.SetContent(form.Container())
	}
	showHome = func() {
		win.SetContent(homeScreen(
			func() { showForm(percentageScreen(percentage)) },
			func() { showForm(cgpaScreen(cgpa)) },
		))
	}

	showHome()
	return win
}

func homeScreen(onPercentage, onCGPA func()) fyne.CanvasObject {
	title := widget.NewLabelWithStyle("Course Calculator", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	percentageBtn := widget.NewButtonWithIcon("Percentage Calculator", theme.DocumentIcon(), onPercentage)
	percentageBtn.Importance = widget.HighImportance
	cgpaBtn := widget.NewButtonWithIcon("CGPA Calculator", theme.ListIcon(), onCGPA)
	cgpaBtn.Importance = widget.HighImportance

	return container.NewCenter(container.NewVBox(title, percentageBtn, cgpaBtn))
}
