package preferences

import (
	"strconv"
	"strings"

	"pulsodoro/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".svg"}

// Window handles the preferences UI.
type Window struct {
	window          fyne.Window
	settings        model.Settings
	onSave          func(model.Settings)
	focusMinutes    *widget.Entry
	shortMinutes    *widget.Entry
	longMinutes     *widget.Entry
	changeWallpaper *widget.Check
	focusBackground *widget.Entry
	breakBackground *widget.Entry
	sound           *widget.Check
	customMedia     *widget.Entry
	alwaysOnTop     *widget.Check
	launchAtLogin   *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings model.Settings, onSave func(model.Settings)) *Window {
	window := app.NewWindow("Pulsodoro Settings")

	prefs := &Window{
		window:          window,
		onSave:          onSave,
		focusMinutes:    widget.NewEntry(),
		shortMinutes:    widget.NewEntry(),
		longMinutes:     widget.NewEntry(),
		changeWallpaper: widget.NewCheck("Change wallpaper with the timer", nil),
		focusBackground: widget.NewEntry(),
		breakBackground: widget.NewEntry(),
		sound:           widget.NewCheck("Play a chime on transitions", nil),
		customMedia:     widget.NewEntry(),
		alwaysOnTop:     widget.NewCheck("Keep timer window on top", nil),
		launchAtLogin:   widget.NewCheck("Launch at login", nil),
	}
	prefs.focusBackground.SetPlaceHolder("Image shown while focusing")
	prefs.breakBackground.SetPlaceHolder("Image shown during breaks")
	prefs.customMedia.SetPlaceHolder("Video ID or URL")

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Focus"), prefs.focusMinutes, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Short break"), prefs.shortMinutes, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break"), prefs.longMinutes, widget.NewLabel("min")),
		widget.NewLabelWithStyle("Backgrounds", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.changeWallpaper,
		prefs.pathRow("Focus image", prefs.focusBackground),
		prefs.pathRow("Break image", prefs.breakBackground),
		widget.NewLabelWithStyle("General", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.sound,
		container.NewBorder(nil, nil, widget.NewLabel("Media"), nil, prefs.customMedia),
		prefs.alwaysOnTop,
		prefs.launchAtLogin,
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(460, 520))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs.UpdateSettings(settings)
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings model.Settings) {
	prefs.settings = settings
	prefs.focusMinutes.SetText(strconv.Itoa(settings.FocusMinutes))
	prefs.shortMinutes.SetText(strconv.Itoa(settings.ShortBreakMinutes))
	prefs.longMinutes.SetText(strconv.Itoa(settings.LongBreakMinutes))
	prefs.changeWallpaper.SetChecked(settings.ChangeWallpaper)
	prefs.focusBackground.SetText(settings.FocusBackground)
	prefs.breakBackground.SetText(settings.BreakBackground)
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.customMedia.SetText(settings.CustomMediaID)
	prefs.alwaysOnTop.SetChecked(settings.AlwaysOnTop)
	prefs.launchAtLogin.SetChecked(settings.LaunchAtLogin)
}

func (prefs *Window) pathRow(label string, entry *widget.Entry) fyne.CanvasObject {
	browse := widget.NewButton("Browse...", func() {
		picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			defer reader.Close()
			entry.SetText(reader.URI().Path())
		}, prefs.window)
		picker.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
		picker.Show()
	})
	return container.NewBorder(nil, nil, widget.NewLabel(label), browse, entry)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.FocusMinutes = parseMinutes(prefs.focusMinutes.Text, settings.FocusMinutes)
	settings.ShortBreakMinutes = parseMinutes(prefs.shortMinutes.Text, settings.ShortBreakMinutes)
	settings.LongBreakMinutes = parseMinutes(prefs.longMinutes.Text, settings.LongBreakMinutes)
	settings.ChangeWallpaper = prefs.changeWallpaper.Checked
	settings.FocusBackground = strings.TrimSpace(prefs.focusBackground.Text)
	settings.BreakBackground = strings.TrimSpace(prefs.breakBackground.Text)
	settings.SoundEnabled = prefs.sound.Checked
	settings.CustomMediaID = strings.TrimSpace(prefs.customMedia.Text)
	settings.AlwaysOnTop = prefs.alwaysOnTop.Checked
	settings.LaunchAtLogin = prefs.launchAtLogin.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

// parseMinutes keeps fallback for anything outside 1..model.MaxMinutes.
func parseMinutes(value string, fallback int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 || parsed > model.MaxMinutes {
		return fallback
	}
	return parsed
}
