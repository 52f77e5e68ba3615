package dto

// WorkLogRequest represents work log data for the upsert-by-date endpoint
// and for todo extraction. The date must be ISO formatted (YYYY-MM-DD).
type WorkLogRequest struct {
	Date    string `json:"date" binding:"required,datetime=2006-01-02"`
	Content string `json:"content" binding:"required"`
}
