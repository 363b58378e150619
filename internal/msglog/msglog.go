// Package msglog stores the per-session serial traffic history in a
// bounded FIFO ring. Oldest entries are evicted once capacity is reached;
// the rx/tx counters keep counting across evictions.
package msglog

import "time"

// DefaultCapacity is the number of entries kept per session.
const DefaultCapacity = 10000

// Direction tags an entry as received or transmitted.
type Direction int

const (
	Rx Direction = iota
	Tx
)

func (d Direction) String() string {
	if d == Tx {
		return "TX"
	}
	return "RX"
}

// Entry is one timestamped chunk of serial traffic.
type Entry struct {
	Time      time.Time
	Direction Direction
	Data      []byte
}

// Log is a bounded ring of entries. Not safe for concurrent use; the
// owning session is driven by a single program loop.
type Log struct {
	entries  []Entry
	head     int // index of the oldest entry
	count    int
	capacity int
	rxCount  uint64
	txCount  uint64
}

// New creates a log with the given capacity (DefaultCapacity when <= 0).
func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		entries:  make([]Entry, capacity),
		capacity: capacity,
	}
}

// PushRx appends a received chunk and bumps the rx counter.
func (l *Log) PushRx(data []byte) {
	l.push(Entry{Time: time.Now(), Direction: Rx, Data: data})
	l.rxCount++
}

// PushTx appends a transmitted chunk and bumps the tx counter.
func (l *Log) PushTx(data []byte) {
	l.push(Entry{Time: time.Now(), Direction: Tx, Data: data})
	l.txCount++
}

func (l *Log) push(e Entry) {
	if l.count < l.capacity {
		l.entries[(l.head+l.count)%l.capacity] = e
		l.count++
		return
	}
	// Full: overwrite the oldest slot and advance the head.
	l.entries[l.head] = e
	l.head = (l.head + 1) % l.capacity
}

// Len returns the number of retained entries.
func (l *Log) Len() int {
	return l.count
}

// Capacity returns the ring size.
func (l *Log) Capacity() int {
	return l.capacity
}

// At returns the i-th oldest retained entry, 0 <= i < Len().
func (l *Log) At(i int) Entry {
	return l.entries[(l.head+i)%l.capacity]
}

// Tail returns up to n of the newest entries, oldest first.
func (l *Log) Tail(n int) []Entry {
	if n > l.count {
		n = l.count
	}
	out := make([]Entry, n)
	for i := 0; i < n; i++ {
		out[i] = l.At(l.count - n + i)
	}
	return out
}

// RxCount returns the total number of received chunks, including evicted ones.
func (l *Log) RxCount() uint64 {
	return l.rxCount
}

// TxCount returns the total number of transmitted chunks, including evicted ones.
func (l *Log) TxCount() uint64 {
	return l.txCount
}

// Clear drops all entries and resets both counters.
func (l *Log) Clear() {
	l.head = 0
	l.count = 0
	l.rxCount = 0
	l.txCount = 0
}
