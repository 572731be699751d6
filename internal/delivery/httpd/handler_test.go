package httpd_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/epic-cs/epic-test-backend/internal/delivery/httpd"
	"github.com/epic-cs/epic-test-backend/internal/models"
	"github.com/epic-cs/epic-test-backend/internal/service"
	"github.com/epic-cs/epic-test-backend/internal/store"
)

func newRouter(t *testing.T) (http.Handler, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	log := zerolog.Nop()

	h := httpd.NewHandler(
		service.NewRegistrationService(st, log),
		service.NewPaymentService(st, log),
		service.NewTestService(st, log),
		service.NewDiagnosticsService(st, log),
		log,
	)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r, st
}

func do(t *testing.T, router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(dst))
}

type proofUpload struct {
	filename string
	mime     string
	content  []byte
}

func registrationRequest(t *testing.T, npm, name, email string, proof *proofUpload) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	for field, value := range map[string]string{"npm": npm, "name": name, "email": email} {
		require.NoError(t, w.WriteField(field, value))
	}

	if proof != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="payment_proof"; filename=%q`, proof.filename))
		header.Set("Content-Type", proof.mime)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(proof.content)
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/registrations", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func jsonRequest(t *testing.T, method, path string, payload any) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRootLiveness(t *testing.T) {
	router, _ := newRouter(t)

	rec := do(t, router, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string `json:"message"`
	}
	decodeBody(t, rec, &resp)
	require.Equal(t, "EPIC Test Backend Running", resp.Message)
}

func TestRegistrationWithoutProofThenPendingListing(t *testing.T) {
	router, _ := newRouter(t)

	rec := do(t, router, registrationRequest(t, "2106000", "Budi", "budi@x.com", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var reg models.RegistrationResponse
	decodeBody(t, rec, &reg)
	require.NotEmpty(t, reg.PaymentID)
	require.Equal(t, "Registrasi tersimpan", reg.Message)

	rec = do(t, router, httptest.NewRequest(http.MethodGet, "/admin/pending", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var pending models.PendingPaymentsResponse
	decodeBody(t, rec, &pending)
	require.Len(t, pending.Payments, 1)
	require.Equal(t, "2106000", pending.Payments[0].NPM)
	require.Nil(t, pending.Payments[0].FileURL, "file_url must be null without an upload")
}

func TestRegistrationWithProofExposesDataLink(t *testing.T) {
	router, _ := newRouter(t)

	content := []byte("fake png bytes")
	rec := do(t, router, registrationRequest(t, "2106000", "Budi", "budi@x.com", &proofUpload{
		filename: "bukti.png",
		mime:     "image/png",
		content:  content,
	}))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, httptest.NewRequest(http.MethodGet, "/admin/pending", nil))
	var pending models.PendingPaymentsResponse
	decodeBody(t, rec, &pending)
	require.Len(t, pending.Payments, 1)
	require.NotNil(t, pending.Payments[0].FileURL)
	require.Equal(t,
		"data:image/png;base64,"+base64.StdEncoding.EncodeToString(content),
		*pending.Payments[0].FileURL,
	)
}

func TestRegistrationMissingFields(t *testing.T) {
	router, st := newRouter(t)

	rec := do(t, router, registrationRequest(t, "2106000", "", "budi@x.com", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	payments, err := st.GetDocuments(context.Background(), "payment", store.Filter{})
	require.NoError(t, err)
	require.Empty(t, payments)
	students, err := st.GetDocuments(context.Background(), "student", store.Filter{})
	require.NoError(t, err)
	require.Empty(t, students)
}

func TestRegistrationRejectsUnsupportedProof(t *testing.T) {
	router, st := newRouter(t)

	rec := do(t, router, registrationRequest(t, "2106000", "Budi", "budi@x.com", &proofUpload{
		filename: "proof.txt",
		mime:     "text/plain",
		content:  []byte("bukan gambar"),
	}))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	payments, err := st.GetDocuments(context.Background(), "payment", store.Filter{})
	require.NoError(t, err)
	require.Empty(t, payments, "rejected upload must not create a payment")
}

func TestVerifyPaymentFlow(t *testing.T) {
	router, _ := newRouter(t)

	rec := do(t, router, registrationRequest(t, "2106000", "Budi", "budi@x.com", nil))
	var reg models.RegistrationResponse
	decodeBody(t, rec, &reg)

	rec = do(t, router, jsonRequest(t, http.MethodPost, "/admin/verify/"+reg.PaymentID,
		map[string]string{"status": "approved"}))
	require.Equal(t, http.StatusOK, rec.Code)

	var verify struct {
		OK bool `json:"ok"`
	}
	decodeBody(t, rec, &verify)
	require.True(t, verify.OK)

	rec = do(t, router, httptest.NewRequest(http.MethodGet, "/admin/pending", nil))
	var pending models.PendingPaymentsResponse
	decodeBody(t, rec, &pending)
	require.Empty(t, pending.Payments, "approved payment must leave the pending list")
}

func TestVerifyPaymentInvalidStatus(t *testing.T) {
	router, _ := newRouter(t)

	rec := do(t, router, registrationRequest(t, "2106000", "Budi", "budi@x.com", nil))
	var reg models.RegistrationResponse
	decodeBody(t, rec, &reg)

	rec = do(t, router, jsonRequest(t, http.MethodPost, "/admin/verify/"+reg.PaymentID,
		map[string]string{"status": "paid"}))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Payment stays pending.
	rec = do(t, router, httptest.NewRequest(http.MethodGet, "/admin/pending", nil))
	var pending models.PendingPaymentsResponse
	decodeBody(t, rec, &pending)
	require.Len(t, pending.Payments, 1)
}

func TestVerifyPaymentNotFound(t *testing.T) {
	router, _ := newRouter(t)

	rec := do(t, router, jsonRequest(t, http.MethodPost,
		"/admin/verify/00000000-0000-0000-0000-000000000000",
		map[string]string{"status": "approved"}))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVerifyPaymentMalformedID(t *testing.T) {
	router, _ := newRouter(t)

	rec := do(t, router, jsonRequest(t, http.MethodPost, "/admin/verify/not-an-id",
		map[string]string{"status": "approved"}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitResultPass(t *testing.T) {
	router, st := newRouter(t)

	rec := do(t, router, jsonRequest(t, http.MethodPost, "/admin/result",
		models.ResultRequest{NPM: "2106000", Attempt: 1, Score: 85, Status: "pass"}))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ResultResponse
	decodeBody(t, rec, &resp)
	require.True(t, resp.OK)
	require.NotNil(t, resp.CertificateURL)

	const prefix = "data:application/pdf;base64,"
	require.True(t, strings.HasPrefix(*resp.CertificateURL, prefix))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(*resp.CertificateURL, prefix))
	require.NoError(t, err)
	require.Contains(t, string(raw), "NPM: 2106000")
	require.Contains(t, string(raw), "Attempt: 1")

	certs, err := st.GetDocuments(context.Background(), "certificate", store.Filter{"npm": "2106000"})
	require.NoError(t, err)
	require.Len(t, certs, 1)
}

func TestSubmitResultFail(t *testing.T) {
	router, st := newRouter(t)

	rec := do(t, router, jsonRequest(t, http.MethodPost, "/admin/result",
		models.ResultRequest{NPM: "2106000", Attempt: 1, Score: 40, Status: "fail"}))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ResultResponse
	decodeBody(t, rec, &resp)
	require.True(t, resp.OK)
	require.Nil(t, resp.CertificateURL)

	certs, err := st.GetDocuments(context.Background(), "certificate", store.Filter{})
	require.NoError(t, err)
	require.Empty(t, certs)
}

func TestSubmitResultInvalidStatus(t *testing.T) {
	router, _ := newRouter(t)

	rec := do(t, router, jsonRequest(t, http.MethodPost, "/admin/result",
		models.ResultRequest{NPM: "2106000", Attempt: 1, Score: 85, Status: "passed"}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStudentHistory(t *testing.T) {
	router, _ := newRouter(t)

	rec := do(t, router, jsonRequest(t, http.MethodPost, "/admin/result",
		models.ResultRequest{NPM: "2106000", Attempt: 2, Score: 50, Status: "fail"}))
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, router, jsonRequest(t, http.MethodPost, "/admin/result",
		models.ResultRequest{NPM: "2106000", Attempt: 1, Score: 85, Status: "pass"}))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, httptest.NewRequest(http.MethodGet, "/students/2106000/history", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var history models.HistoryResponse
	decodeBody(t, rec, &history)
	require.Len(t, history.Tests, 2)

	require.Equal(t, 1, history.Tests[0].Attempt)
	require.Equal(t, "pass", history.Tests[0].Status)
	require.NotNil(t, history.Tests[0].CertificateURL)

	require.Equal(t, 2, history.Tests[1].Attempt)
	require.Equal(t, "fail", history.Tests[1].Status)
	require.Nil(t, history.Tests[1].CertificateURL)
}

func TestStudentHistoryUnknownStudent(t *testing.T) {
	router, _ := newRouter(t)

	rec := do(t, router, httptest.NewRequest(http.MethodGet, "/students/999/history", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var history models.HistoryResponse
	decodeBody(t, rec, &history)
	require.Empty(t, history.Tests)
}

func TestDiagnosticsAlwaysSucceeds(t *testing.T) {
	router, st := newRouter(t)

	_, err := st.CreateDocument(context.Background(), "student", store.Document{"npm": "1"})
	require.NoError(t, err)

	rec := do(t, router, httptest.NewRequest(http.MethodGet, "/test", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var diag models.DiagnosticsResponse
	decodeBody(t, rec, &diag)
	require.Equal(t, "running", diag.Backend)
	require.Equal(t, "connected", diag.ConnectionStatus)
	require.Contains(t, diag.Collections, "student")
}

func TestHealthCheck(t *testing.T) {
	router, _ := newRouter(t)

	rec := do(t, router, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
