package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"

	"github.com/epeers/gradecalc/internal/calc"
)

// screenConfig describes one calculator screen. Both calculators take pairs of
// fields per record, so they share RecordForm.
type screenConfig struct {
	title        string
	item         string
	placeholders [2]string
	maxRecords   int
	defaultCount int
	prefKey      string
	compute      func(rows [][2]string) (string, error)
}

// RecordForm holds the count selector, per-record entries and result of a calculator screen.
type RecordForm struct {
	cfg   screenConfig
	win   fyne.Window
	prefs fyne.Preferences

	countSelect *widget.Select
	rows        *fyne.Container
	entries     [][2]*widget.Entry
	result      *widget.Label

	container *fyne.Container
}

func newRecordForm(cfg screenConfig, win fyne.Window, prefs fyne.Preferences, onBack func()) *RecordForm {
	rf := &RecordForm{cfg: cfg, win: win, prefs: prefs}

	opts := make([]string, cfg.maxRecords)
	for i := range opts {
		opts[i] = strconv.Itoa(i + 1)
	}

	count := prefs.IntWithFallback(cfg.prefKey, cfg.defaultCount)
	if count < 1 || count > cfg.maxRecords {
		count = min(cfg.defaultCount, cfg.maxRecords)
	}

	rf.countSelect = widget.NewSelect(opts, nil)
	rf.countSelect.SetSelected(strconv.Itoa(count))
	rf.countSelect.OnChanged = func(s string) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return
		}
		rf.prefs.SetInt(rf.cfg.prefKey, n)
		rf.setCount(n)
	}

	rf.rows = container.NewVBox()
	rf.result = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	backBtn := widget.NewButtonWithIcon("Back", theme.NavigateBackIcon(), onBack)
	calcBtn := widget.NewButton("Calculate "+cfg.title, rf.onCalculate)
	calcBtn.Importance = widget.HighImportance

	header := container.NewVBox(
		container.NewHBox(backBtn),
		widget.NewLabelWithStyle(cfg.title+" Calculator", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewForm(widget.NewFormItem("Number of "+strings.ToLower(cfg.item)+"s", rf.countSelect)),
	)
	footer := container.NewVBox(calcBtn, rf.result)

	rf.container = container.NewBorder(header, footer, nil, nil, container.NewVScroll(rf.rows))
	rf.setCount(count)
	return rf
}

// Container returns the screen's root object.
func (rf *RecordForm) Container() *fyne.Container {
	return rf.container
}

// setCount rebuilds the entries for n records, discarding typed values and the last result.
func (rf *RecordForm) setCount(n int) {
	rf.entries = make([][2]*widget.Entry, n)
	objs := make([]fyne.CanvasObject, 0, 2*n)
	for i := 0; i < n; i++ {
		first := widget.NewEntry()
		first.SetPlaceHolder(rf.cfg.placeholders[0])
		second := widget.NewEntry()
		second.SetPlaceHolder(rf.cfg.placeholders[1])
		rf.entries[i] = [2]*widget.Entry{first, second}

		objs = append(objs,
			widget.NewLabel(fmt.Sprintf("%s %d", rf.cfg.item, i+1)),
			container.NewGridWithColumns(2, first, second),
		)
	}
	rf.rows.Objects = objs
	rf.rows.Refresh()
	rf.result.SetText("")
}

func (rf *RecordForm) onCalculate() {
	rows := make([][2]string, len(rf.entries))
	for i, e := range rf.entries {
		rows[i] = [2]string{e[0].Text, e[1].Text}
	}

	text, err := rf.cfg.compute(rows)
	if err != nil {
		rf.result.SetText("")
		dialog.ShowError(errors.New(userMessage(rf.cfg.title, err)), rf.win)
		return
	}
	rf.result.SetText(text)
}

// userMessage turns an engine error into dialog text. Broken invariants are
// logged and shown generically.
func userMessage(calculator string, err error) string {
	var verr *calc.ValidationError
	if !errors.As(err, &verr) {
		log.WithField("calculator", calculator).Errorf("unexpected calculation error: %v", err)
		return "Something went wrong while calculating."
	}
	if verr.Internal() {
		log.WithField("calculator", calculator).Errorf("calculation invariant violated: %v", err)
	}
	return verr.Message()
}
