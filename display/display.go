// Package display makes the status line visible.
package display

// Publisher shows title as the current status.
type Publisher interface {
	Publish(title string) error
}
