package services

import "log"

// BestEffort runs fn once, logs a failure and drops it. Used for the
// outbound side effects (staff notify, order append) whose failure
// must never reach the user's reply.
func BestEffort(op string, fn func() error) {
	if err := fn(); err != nil {
		log.Printf("%s: %v", op, err)
	}
}
