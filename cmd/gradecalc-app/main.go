package main

import (
	"fyne.io/fyne/v2/app"
	log "github.com/sirupsen/logrus"

	"github.com/epeers/gradecalc/config"
	"github.com/epeers/gradecalc/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	a := app.NewWithID("com.epeers.gradecalc")
	win := ui.BuildMainWindow(a, ui.Limits{
		MaxSubjects:  cfg.MaxSubjects,
		MaxSemesters: cfg.MaxSemesters,
	})
	win.ShowAndRun()
}
