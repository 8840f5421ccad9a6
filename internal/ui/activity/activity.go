package activity

import (
	"math/rand"
	"sync"
	"time"
)

// Activity is a short suggestion for what to do during a break.
type Activity struct {
	Icon string
	Text string
}

// String returns the icon and text joined for display.
func (activity Activity) String() string {
	if activity.Icon == "" {
		return activity.Text
	}
	return activity.Icon + "  " + activity.Text
}

// Defaults returns the built-in break suggestions.
func Defaults() []Activity {
	return []Activity{
		{Icon: "\U0001F9D8", Text: "Close your eyes and take 10 deep breaths"},
		{Icon: "\U0001F4AA", Text: "Stand up and stretch for 2 minutes"},
		{Icon: "\U0001F440", Text: "Look at something 20 feet away for 20 seconds"},
		{Icon: "\U0001F4A7", Text: "Get a glass of water and hydrate"},
		{Icon: "\U0001F6B6", Text: "Take a short walk around the room"},
		{Icon: "\U0001F64C", Text: "Do 10 shoulder rolls to release tension"},
		{Icon: "✋", Text: "Stretch your wrists and fingers"},
		{Icon: "\U0001F33F", Text: "Step outside for some fresh air"},
	}
}

// Picker returns random activities without repeating the previous one.
type Picker struct {
	mu         sync.Mutex
	activities []Activity
	rng        *rand.Rand
	last       int
}

// NewPicker creates a picker. A nil rng is seeded from the clock.
func NewPicker(activities []Activity, rng *rand.Rand) *Picker {
	if len(activities) == 0 {
		activities = Defaults()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Picker{
		activities: append([]Activity(nil), activities...),
		rng:        rng,
		last:       -1,
	}
}

// Next returns the next suggestion.
func (picker *Picker) Next() Activity {
	picker.mu.Lock()
	defer picker.mu.Unlock()

	if len(picker.activities) == 1 {
		picker.last = 0
		return picker.activities[0]
	}

	var index int
	if picker.last < 0 {
		index = picker.rng.Intn(len(picker.activities))
	} else {
		index = picker.rng.Intn(len(picker.activities) - 1)
		if index >= picker.last {
			index++
		}
	}
	picker.last = index
	return picker.activities[index]
}
