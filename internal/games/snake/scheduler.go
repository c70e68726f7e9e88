package snake

import (
	"sync"
	"time"
)

// Scheduler runs fn every interval until the returned cancel func is called.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
}

// TickerScheduler is a Scheduler backed by time.Ticker.
// Each Every call runs fn on its own goroutine.
type TickerScheduler struct{}

// Every starts a ticker goroutine. cancel is idempotent and does not wait:
// a call to fn already in progress may still complete.
func (TickerScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	var once sync.Once

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()

	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}
