package main

import (
	"time"
)

func (app *application) sweepExpiredSessionsEvery(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			if removed := app.sessions.Sweep(); removed > 0 {
				app.logger.Infof("swept %d expired checkout sessions at %s", removed, time.Now().Format(time.RFC1123))
			}
			app.rateLimiter.Cleanup()
		}
	}()
}
