package state

import "github.com/google/uuid"

// newStrokeID names a stroke for log lines and exports.
func newStrokeID() string {
	return uuid.NewString()
}
