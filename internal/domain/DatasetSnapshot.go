package domain

import "time"

// DatasetSnapshot resume uma verificação do arquivo de dados feita pelo monitor
type DatasetSnapshot struct {
	CheckID        string         `json:"check_id"`
	CheckedAt      time.Time      `json:"checked_at"`
	RowCount       int            `json:"row_count"`
	InsightCount   int            `json:"insight_count"`
	PricingActions map[string]int `json:"pricing_actions"`
	FileSizeBytes  int64          `json:"file_size_bytes"`
	FileModifiedAt time.Time      `json:"file_modified_at"`
	LoadError      string         `json:"load_error,omitempty"`
}
