package domain

// ParsingStatus tracks extraction of a stored plan.
type ParsingStatus string

const (
	ParsingStatusQueued     ParsingStatus = "queued"
	ParsingStatusProcessing ParsingStatus = "processing"
	ParsingStatusCompleted  ParsingStatus = "completed"
	ParsingStatusFailed     ParsingStatus = "failed"
)

// ExportFormat is a download format for a plan.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// ExportContentTypes maps each export format to its MIME type.
var ExportContentTypes = map[ExportFormat]string{
	ExportFormatCSV:  "text/csv; charset=utf-8",
	ExportFormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}
