package app

import (
	"fmt"
	"time"
)

// statusMessage is the transient message under the status bar.
type statusMessage struct {
	text string
	at   time.Time
}

// SetStatus sets the status message. It stays visible for the configured
// message timeout.
func (app *Application) SetStatus(format string, args ...any) {
	app.status = statusMessage{
		text: fmt.Sprintf(format, args...),
		at:   app.now(),
	}
}

// StatusMessage returns the status message text, whether or not it has
// expired.
func (app *Application) StatusMessage() string {
	return app.status.text
}

// currentMessage returns the status message while it is fresh and "" once
// it has expired.
func (app *Application) currentMessage() string {
	if app.status.text == "" {
		return ""
	}
	if app.now().Sub(app.status.at) >= app.cfg.MessageDuration() {
		return ""
	}
	return app.status.text
}
