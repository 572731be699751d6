package service

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"time"
)

// CertificateURL builds the self-contained certificate reference for a
// passed test. The payload is deterministic given its inputs; it is never
// persisted, so the embedded date is the generation date, not the original
// issuance date.
func CertificateURL(npm string, attempt int, score float64, now time.Time) string {
	content := fmt.Sprintf(
		"SERTIFIKAT EPIC\nNPM: %s\nAttempt: %d\nSkor: %s\nTanggal: %s\n",
		npm, attempt, formatScore(score), now.Format("02-01-2006"),
	)
	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString([]byte(content))
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
