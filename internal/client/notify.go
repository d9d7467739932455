package client

import (
	"fmt"
	"io"
)

// Notifier receives the single user-visible notification each gateway
// call emits. The TUI renders these in its notice line; the plain CLI
// prints them.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// WriterNotifier prints notifications as plain checkmark lines, for
// non-TTY use.
type WriterNotifier struct {
	W io.Writer
}

func (n WriterNotifier) Success(msg string) {
	fmt.Fprintf(n.W, "✓ %s\n", msg)
}

func (n WriterNotifier) Error(msg string) {
	fmt.Fprintf(n.W, "✗ %s\n", msg)
}
