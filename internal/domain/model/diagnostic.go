package model

// DiagnosticReport is the body of GET /test. Every field except Collections
// is a human-readable status string.
type DiagnosticReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
