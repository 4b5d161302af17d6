package main

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/scoreloop/recapboard/internal/config"
	"github.com/scoreloop/recapboard/internal/lineup"
	"github.com/scoreloop/recapboard/internal/logging"
	"github.com/scoreloop/recapboard/internal/statsapi"
	"github.com/scoreloop/recapboard/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.scoreloop.recapboard"
	AppName = "Recapboard"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewBoardTheme())

	// Initialize services
	settings := config.NewSettings(myApp)
	logging.Init(logging.Config{
		Level:  settings.GetLogLevel(),
		Format: "console",
	})
	logging.Logger.Info().Str("version", version).Msg("Recapboard starting")

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	myWindow.SetFixedSize(true)

	// The schedule fetch blocks the window from showing; loading it in the
	// background like the photos is a backlog candidate.
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

	// Show and run
	myWindow.ShowAndRun()
}
