package dto

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	Grade          int     `json:"grade" binding:"required"`
	ClassNum       int     `json:"class_num" binding:"required"`
	StudentNum     int     `json:"student_num" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	GuardianPhone1 *string `json:"guardian_phone1"`
	GuardianPhone2 *string `json:"guardian_phone2"`
}

// UpdateStudentRequest represents a full-replace student update. Every
// mutable field is overwritten; the consultation history is untouched.
type UpdateStudentRequest struct {
	Grade          int     `json:"grade" binding:"required"`
	ClassNum       int     `json:"class_num" binding:"required"`
	StudentNum     int     `json:"student_num" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	GuardianPhone1 *string `json:"guardian_phone1"`
	GuardianPhone2 *string `json:"guardian_phone2"`
}

// ConsultationRequest represents one consultation entry to append
type ConsultationRequest struct {
	Date    string `json:"date" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ConsultationListRequest carries the consultation entries to summarize.
// An empty (or omitted) list is valid and short-circuits the AI call.
type ConsultationListRequest struct {
	Consultations []ConsultationRequest `json:"consultations"`
}

// SummaryResponse is the assistant's consultation summary
type SummaryResponse struct {
	Summary string `json:"summary"`
}
