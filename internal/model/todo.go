package model

// Todo is the domain model for a todo entry.
// Field names on disk follow the original db.json layout.
type Todo struct {
	ID          int64  `json:"id"`
	CreatedAt   int64  `json:"timestamp"` // epoch seconds
	CreatedDate string `json:"date"`      // DD/MM/YYYY at creation
	Text        string `json:"text"`
	Completed   bool   `json:"completed"`
}

// SetCompleted sets the completion flag.
func (t *Todo) SetCompleted(done bool) { t.Completed = done }

// Toggle flips the completion flag.
func (t *Todo) Toggle() { t.Completed = !t.Completed }
