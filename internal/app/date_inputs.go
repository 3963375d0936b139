// internal/app/date_inputs.go
package app

import "sync"

// DateInputs tracks chats that were asked for a date and whose next text
// message should be read as the date input.
type DateInputs struct {
	mu      sync.Mutex
	waiting map[int64]bool
}

func NewDateInputs() *DateInputs {
	return &DateInputs{waiting: make(map[int64]bool)}
}

func (d *DateInputs) Await(chatID int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.waiting[chatID] = true
}

func (d *DateInputs) Awaiting(chatID int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.waiting[chatID]
}

func (d *DateInputs) Clear(chatID int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.waiting, chatID)
}
