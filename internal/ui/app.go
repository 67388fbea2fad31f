package ui

import (
	"LocalSketch/internal/config"
	"LocalSketch/internal/export"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
)

// RunApp opens the main window around board and blocks until it closes.
func RunApp(cfg config.Config, board *BoardWidget) {
	myApp := app.New()
	myWindow := myApp.NewWindow("LocalSketch")
	myWindow.Resize(fyne.NewSize(float32(cfg.Canvas.Width)+40, float32(cfg.Canvas.Height)+120))

	format, _ := cfg.Format()
	toolbar := NewToolbar(board, format)
	toolbar.OnExport = func(f export.Format) {
		ShowExportDialog(myWindow, board, f, cfg.Export.Dir)
	}

	bindShortcuts(myWindow.Canvas(), board)

	content := container.NewBorder(toolbar.Build(), board.StatusBar(), nil, nil, container.NewScroll(board))
	myWindow.SetContent(content)
	myWindow.SetOnClosed(board.Session().Close)
	myWindow.ShowAndRun()
}

func bindShortcuts(c fyne.Canvas, board *BoardWidget) {
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		board.Undo()
	})
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		board.Redo()
	})
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			board.Cancel()
		}
	})
}
