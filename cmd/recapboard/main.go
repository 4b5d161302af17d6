package main

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/scoreloop/recapboard/internal/config"
	"github.com/scoreloop/recapboard/internal/lineup"
	"github.com/scoreloop/recapboard/internal/logging"
	"github.com/scoreloop/recapboard/internal/statsapi"
	"github.com/scoreloop/recapboard/internal/ui"
)

// Minimal entrypoint without version stamping; the root main is the one
// packaged for release.
func main() {
	myApp := app.NewWithID("com.scoreloop.recapboard")
	myApp.Settings().SetTheme(ui.NewBoardTheme())

	settings := config.NewSettings(myApp)
	logging.Init(logging.DefaultConfig())

	myWindow := myApp.NewWindow("Recapboard")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	myWindow.SetFixedSize(true)

	client := statsapi.NewClient(settings.GetScheduleURL())
	schedule, err := client.Fetch(context.Background())
	if err != nil {
		ui.ShowError(myWindow, err)
		myWindow.ShowAndRun()
		return
	}

	board, err := lineup.FromSchedule(schedule)
	if err != nil {
		ui.ShowError(myWindow, err)
		myWindow.ShowAndRun()
		return
	}

	boardUI := ui.NewBoard(myWindow, board, settings.GetTargetFPS())
	boardUI.Start()
	myWindow.SetOnClosed(boardUI.Stop)
	myWindow.ShowAndRun()
}
