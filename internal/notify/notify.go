// Package notify provides transient, severity-tagged user notifications
// that expire on their own after a fixed TTL.
package notify

import "time"

// Level is the notification severity.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
	LevelSuccess
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	default:
		return "info"
	}
}

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 3 * time.Second

// Notification is one transient message shown to the user.
type Notification struct {
	Message   string
	Level     Level
	CreatedAt time.Time
	TTL       time.Duration
}

// New creates a notification stamped with the current time and DefaultTTL.
func New(level Level, message string) Notification {
	return Notification{
		Message:   message,
		Level:     level,
		CreatedAt: time.Now(),
		TTL:       DefaultTTL,
	}
}

func Info(message string) Notification    { return New(LevelInfo, message) }
func Warning(message string) Notification { return New(LevelWarning, message) }
func Error(message string) Notification   { return New(LevelError, message) }
func Success(message string) Notification { return New(LevelSuccess, message) }

// Expired reports whether the notification's TTL has elapsed at now.
func (n Notification) Expired(now time.Time) bool {
	return now.Sub(n.CreatedAt) > n.TTL
}

// Queue is an ordered notification queue. Notifications are created in TTL
// order, so expiry only ever removes a prefix.
type Queue struct {
	items []Notification
}

// Push appends a notification.
func (q *Queue) Push(n Notification) {
	q.items = append(q.items, n)
}

// DropExpired removes the expired prefix, stopping at the first live entry.
func (q *Queue) DropExpired(now time.Time) {
	i := 0
	for i < len(q.items) && q.items[i].Expired(now) {
		i++
	}
	if i > 0 {
		q.items = q.items[i:]
	}
}

// Len returns the number of queued notifications.
func (q *Queue) Len() int {
	return len(q.items)
}

// Items returns the queued notifications, oldest first.
func (q *Queue) Items() []Notification {
	return q.items
}

// Latest returns the newest notification, if any.
func (q *Queue) Latest() (Notification, bool) {
	if len(q.items) == 0 {
		return Notification{}, false
	}
	return q.items[len(q.items)-1], true
}

// Clone returns a deep copy so the two queues evolve independently.
func (q Queue) Clone() Queue {
	items := make([]Notification, len(q.items))
	copy(items, q.items)
	return Queue{items: items}
}
