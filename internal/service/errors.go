package service

import "errors"

// Sentinel errors carrying the user-facing messages. The httpd layer maps
// them onto HTTP statuses.
var (
	ErrIncompleteData      = errors.New("Data tidak lengkap")
	ErrUnsupportedMedia    = errors.New("Format file tidak didukung. Gunakan JPG/PNG/PDF")
	ErrInvalidStatus       = errors.New("Status tidak valid")
	ErrInvalidResultStatus = errors.New("Status hasil tidak valid")
	ErrInvalidPaymentID    = errors.New("Payment ID tidak valid")
	ErrPaymentNotFound     = errors.New("Payment tidak ditemukan")
)
