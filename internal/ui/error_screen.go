package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/scoreloop/recapboard/internal/logging"
)

// ShowError replaces the window content with the error text over the
// backdrop. A schedule fetch failure is fatal to showing real content; the
// operator restarts the app to retry.
func ShowError(window fyne.Window, err error) {
	logging.Logger.Error().Err(err).Msg("Schedule fetch failed, showing error screen")

	backdrop := canvas.NewImageFromImage(Background())
	backdrop.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	backdrop.Move(fyne.NewPos(0, 0))

	label := widget.NewLabel(err.Error())
	label.Wrapping = fyne.TextWrapWord
	label.Alignment = fyne.TextAlignCenter
	label.Resize(fyne.NewSize(WindowWidth, WindowHeight/4))
	label.Move(fyne.NewPos(0, WindowHeight/2))

	window.SetContent(container.NewWithoutLayout(backdrop, label))
}
