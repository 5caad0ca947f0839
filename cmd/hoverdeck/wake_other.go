//go:build !darwin

package main

import "github.com/rs/zerolog"

// wakeEvents never fires; sleep notifications are only wired on macOS.
func wakeEvents(zerolog.Logger) <-chan struct{} {
	return nil
}
