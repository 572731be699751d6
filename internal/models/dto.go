package models

import "time"

// Data Transfer Objects

type RegistrationRequest struct {
	NPM   string
	Name  string
	Email string
	Proof *ProofFile
}

// ProofFile is an uploaded payment proof as received from the multipart form.
type ProofFile struct {
	Name    string
	MIME    string
	Content []byte
}

type RegistrationResponse struct {
	Message   string `json:"message"`
	PaymentID string `json:"payment_id"`
}

type PendingPayment struct {
	ID      string  `json:"_id"`
	NPM     string  `json:"npm"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	FileURL *string `json:"file_url"`
}

type PendingPaymentsResponse struct {
	Payments []PendingPayment `json:"payments"`
}

type VerifyRequest struct {
	Status string `json:"status"`
}

type ResultRequest struct {
	NPM     string  `json:"npm"`
	Attempt int     `json:"attempt"`
	Score   float64 `json:"score"`
	Status  string  `json:"status"`
}

type ResultResponse struct {
	OK             bool    `json:"ok"`
	CertificateURL *string `json:"certificate_url"`
}

type HistoryEntry struct {
	ID             string    `json:"id"`
	Attempt        int       `json:"attempt"`
	Score          *float64  `json:"score"`
	Status         string    `json:"status"`
	TakenAt        time.Time `json:"taken_at"`
	CertificateURL *string   `json:"certificate_url"`
}

type HistoryResponse struct {
	Tests []HistoryEntry `json:"tests"`
}

type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
