package timerview

import (
	"image/color"
	"log"
	"strings"

	"pulsodoro/internal/core/model"
	"pulsodoro/internal/core/timekeeper"
	"pulsodoro/internal/ui/activity"
	"pulsodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

type dotState int

const (
	dotPending dotState = iota
	dotActive
	dotCompleted
)

const dotSize = float32(12)

var (
	textColor      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	dotPendingFill = color.NRGBA{R: 255, G: 255, B: 255, A: 60}
	dotActiveFill  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	dotDoneFill    = color.NRGBA{R: 255, G: 255, B: 255, A: 160}
)

// Controls are the actions behind the window buttons.
type Controls struct {
	OnStart func()
	OnPause func()
	OnReset func()
	OnSkip  func()
	OnMusic func()
}

// Window shows the countdown, cycle progress and break suggestions.
type Window struct {
	window      fyne.Window
	tint        *canvas.Rectangle
	background  *canvas.Image
	stateLabel  *canvas.Text
	clockLabel  *canvas.Text
	activity    *canvas.Text
	dots        []*canvas.Circle
	startButton *widget.Button
	pauseButton *widget.Button
	skipButton  *widget.Button
	picker      *activity.Picker

	backgrounds   map[timekeeper.State]string
	previousState timekeeper.State
	alwaysOnTop   bool
}

// New creates the timer window showing initial. It starts hidden.
func New(app fyne.App, initial timekeeper.Status, picker *activity.Picker, controls Controls) *Window {
	window := app.NewWindow("Pulsodoro")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	tint := canvas.NewRectangle(tintFor(timekeeper.StateIdle))

	background := canvas.NewImageFromResource(nil)
	background.FillMode = canvas.ImageFillStretch

	stateLabel := canvas.NewText(stateTitle(timekeeper.StateIdle), textColor)
	stateLabel.Alignment = fyne.TextAlignCenter
	stateLabel.TextStyle = fyne.TextStyle{Bold: true}
	stateLabel.TextSize = 18

	clockLabel := canvas.NewText(initial.Clock(), textColor)
	clockLabel.Alignment = fyne.TextAlignCenter
	clockLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	clockLabel.TextSize = 64

	activityLabel := canvas.NewText("", textColor)
	activityLabel.Alignment = fyne.TextAlignCenter
	activityLabel.TextSize = 15
	activityLabel.Hide()

	dots := make([]*canvas.Circle, model.CyclesBeforeLongBreak)
	dotObjects := make([]fyne.CanvasObject, 0, len(dots)+2)
	dotObjects = append(dotObjects, layout.NewSpacer())
	for i := range dots {
		dots[i] = canvas.NewCircle(dotPendingFill)
		dotObjects = append(dotObjects, container.NewGridWrap(fyne.NewSize(dotSize, dotSize), dots[i]))
	}
	dotObjects = append(dotObjects, layout.NewSpacer())

	view := &Window{
		window:      window,
		tint:        tint,
		background:  background,
		stateLabel:  stateLabel,
		clockLabel:  clockLabel,
		activity:    activityLabel,
		dots:        dots,
		startButton: widget.NewButton("Start", handler(controls.OnStart)),
		pauseButton: widget.NewButton("Pause", handler(controls.OnPause)),
		skipButton:  widget.NewButton("Skip", handler(controls.OnSkip)),
		picker:      picker,
		backgrounds: map[timekeeper.State]string{},
	}
	resetButton := widget.NewButton("Reset", handler(controls.OnReset))
	musicButton := widget.NewButton("Music", handler(controls.OnMusic))

	buttons := container.NewHBox(layout.NewSpacer(), view.startButton, view.pauseButton, resetButton, view.skipButton, musicButton, layout.NewSpacer())
	body := container.NewVBox(
		layout.NewSpacer(),
		stateLabel,
		clockLabel,
		container.NewHBox(dotObjects...),
		activityLabel,
		layout.NewSpacer(),
		buttons,
	)

	window.SetContent(container.NewStack(background, tint, container.NewPadded(body)))
	window.Resize(fyne.NewSize(380, 300))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	view.applyStatus(initial)
	return view
}

// Show brings the window to the front.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
	view.applyTopmost(view.alwaysOnTop)
}

// Hide hides the window without quitting.
func (view *Window) Hide() {
	view.window.Hide()
}

// SetBackgrounds sets the images used behind the countdown.
// Call from the UI goroutine.
func (view *Window) SetBackgrounds(focus, breakImage string) {
	view.backgrounds = map[timekeeper.State]string{
		timekeeper.StateFocus:      focus,
		timekeeper.StateShortBreak: breakImage,
		timekeeper.StateLongBreak:  breakImage,
	}
	view.setBackground(view.previousState)
}

// SetAlwaysOnTop keeps the window above others where the platform allows it.
// Call from the UI goroutine.
func (view *Window) SetAlwaysOnTop(enabled bool) {
	view.alwaysOnTop = enabled
	view.applyTopmost(enabled)
}

// Update renders a timer snapshot from any goroutine.
func (view *Window) Update(status timekeeper.Status) {
	fyne.Do(func() {
		view.applyStatus(status)
	})
}

func (view *Window) applyStatus(status timekeeper.Status) {
	view.clockLabel.Text = status.Clock()
	view.clockLabel.Refresh()
	view.stateLabel.Text = stateTitle(status.State)
	view.stateLabel.Refresh()

	for i, state := range dotStates(status) {
		view.dots[i].FillColor = dotFill(state)
		view.dots[i].Refresh()
	}

	if status.IsRunning {
		view.startButton.Disable()
		view.pauseButton.Enable()
	} else {
		view.startButton.Enable()
		view.pauseButton.Disable()
	}
	if status.State == timekeeper.StateIdle {
		view.skipButton.Disable()
	} else {
		view.skipButton.Enable()
	}

	if status.State == view.previousState {
		return
	}
	view.previousState = status.State

	if status.State.IsBreak() && view.picker != nil {
		view.activity.Text = view.picker.Next().String()
		view.activity.Show()
	} else {
		view.activity.Text = ""
		view.activity.Hide()
	}
	view.activity.Refresh()

	view.tint.FillColor = tintFor(status.State)
	view.tint.Refresh()
	view.setBackground(status.State)
}

func (view *Window) setBackground(state timekeeper.State) {
	resource, err := resources.LoadImage(view.backgrounds[state])
	if err != nil {
		log.Printf("timer window: background: %v", err)
		resource = nil
	}
	view.background.Resource = resource
	view.background.Refresh()
}

func handler(action func()) func() {
	return func() {
		if action != nil {
			action()
		}
	}
}

func stateTitle(state timekeeper.State) string {
	if state == timekeeper.StateIdle {
		return "IDLE"
	}
	return strings.ToUpper(state.Label())
}

// dotStates marks cycles before the current one completed and the current one active.
func dotStates(status timekeeper.Status) []dotState {
	states := make([]dotState, model.CyclesBeforeLongBreak)
	for i := range states {
		position := i + 1
		switch {
		case position < status.Cycle:
			states[i] = dotCompleted
		case position == status.Cycle && status.State != timekeeper.StateIdle:
			states[i] = dotActive
		}
	}
	return states
}

func dotFill(state dotState) color.Color {
	switch state {
	case dotActive:
		return dotActiveFill
	case dotCompleted:
		return dotDoneFill
	default:
		return dotPendingFill
	}
}

func tintFor(state timekeeper.State) color.Color {
	switch state {
	case timekeeper.StateFocus:
		return color.NRGBA{R: 186, G: 73, B: 73, A: 200}
	case timekeeper.StateShortBreak:
		return color.NRGBA{R: 56, G: 133, B: 138, A: 200}
	case timekeeper.StateLongBreak:
		return color.NRGBA{R: 57, G: 112, B: 151, A: 200}
	default:
		return color.NRGBA{R: 48, G: 48, B: 56, A: 220}
	}
}
