package tui

import "sync"

// NoticeLevel distinguishes success from failure notices.
type NoticeLevel int

const (
	NoticeSuccess NoticeLevel = iota
	NoticeError
)

// Notice is one user-visible notification from the gateway.
type Notice struct {
	Level   NoticeLevel
	Message string
}

// NoticeLog collects gateway notifications for the notice line. It
// implements client.Notifier and is safe for use from the goroutines
// Bubble Tea runs commands on.
type NoticeLog struct {
	mu     sync.Mutex
	latest *Notice
}

func NewNoticeLog() *NoticeLog {
	return &NoticeLog{}
}

func (n *NoticeLog) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.latest = &Notice{Level: NoticeSuccess, Message: msg}
}

func (n *NoticeLog) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.latest = &Notice{Level: NoticeError, Message: msg}
}

// Latest returns the most recent notice, or nil if none has arrived.
func (n *NoticeLog) Latest() *Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.latest
}

// Clear drops the current notice.
func (n *NoticeLog) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.latest = nil
}
