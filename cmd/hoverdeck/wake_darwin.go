//go:build darwin

package main

import (
	"github.com/prashantgupta24/mac-sleep-notifier/notifier"
	"github.com/rs/zerolog"
)

// wakeEvents signals once per system wake so the device can be reopened.
func wakeEvents(log zerolog.Logger) <-chan struct{} {
	sleepCh := notifier.GetInstance().Start()
	wakeCh := make(chan struct{}, 1)

	go func() {
		for activity := range sleepCh {
			if activity.Type == notifier.Awake {
				log.Info().Msg("system wake detected")
				select {
				case wakeCh <- struct{}{}:
				default:
				}
			}
		}
	}()

	return wakeCh
}
