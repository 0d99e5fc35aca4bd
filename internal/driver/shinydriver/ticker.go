package shinydriver

import (
	"sync"
	"time"
)

// startTicker calls send every interval on its own goroutine. The returned
// stop function blocks until the goroutine has exited, so send is never
// called once stop returns.
func startTicker(interval time.Duration, send func()) (stop func()) {
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				// Both cases may be ready; never send after stop.
				select {
				case <-done:
					return
				default:
				}
				send()
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
		})
	}
}
