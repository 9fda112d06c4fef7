package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Plan is a stored trip plan: the raw document kept in object storage and the
// record extracted from it.
type Plan struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	OwnerID        uuid.UUID       `db:"owner_id" json:"owner_id"`
	Name           string          `db:"name" json:"name"`
	Title          string          `db:"title" json:"title"`
	Destination    string          `db:"destination" json:"destination"`
	SourceBucket   string          `db:"source_bucket" json:"-"`
	SourceKey      string          `db:"source_key" json:"-"`
	SourceSize     int64           `db:"source_size" json:"source_size"`
	StructuredData json.RawMessage `db:"structured_data" json:"structured_data"`
	ParserVersion  int             `db:"parser_version" json:"parser_version"`
	ParsingStatus  ParsingStatus   `db:"parsing_status" json:"parsing_status"`
	ParsingError   string          `db:"parsing_error" json:"parsing_error"`
	ParseAttempts  int             `db:"parse_attempts" json:"parse_attempts"`
	ParsedAt       *time.Time      `db:"parsed_at" json:"parsed_at"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}
