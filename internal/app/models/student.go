package models

// Student represents a student row. Consultations live in their own table
// and are loaded alongside the student, ordered by insertion.
type Student struct {
	ID             int64   `db:"id" json:"id"`
	Grade          int     `db:"grade" json:"grade"`
	ClassNum       int     `db:"class_num" json:"class_num"`
	StudentNum     int     `db:"student_num" json:"student_num"`
	Name           string  `db:"name" json:"name"`
	Phone          *string `db:"phone" json:"phone"`
	Address        *string `db:"address" json:"address"`
	GuardianPhone1 *string `db:"guardian_phone1" json:"guardian_phone1"`
	GuardianPhone2 *string `db:"guardian_phone2" json:"guardian_phone2"`

	Consultations []Consultation `db:"-" json:"consultations"`
}

// Consultation is one dated entry in a student's consultation history.
// Only date and content cross the API boundary; identity and ordering
// columns stay internal.
type Consultation struct {
	ID        int64  `db:"id" json:"-"`
	StudentID int64  `db:"student_id" json:"-"`
	Seq       int    `db:"seq" json:"-"`
	Date      string `db:"date" json:"date"`
	Content   string `db:"content" json:"content"`
}
