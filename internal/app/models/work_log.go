package models

// WorkLog is a teacher's daily log. At most one row exists per date; the
// store enforces uniqueness and the create path upserts by date.
type WorkLog struct {
	ID      int64  `db:"id" json:"id"`
	Date    string `db:"date" json:"date"`
	Content string `db:"content" json:"content"`
}
