package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/settlehub/src/models"
	"github.com/username/settlehub/src/parsers/columns"
	"github.com/username/settlehub/src/parsers/settlement"
	"github.com/username/settlehub/src/security"
	"github.com/username/settlehub/src/services"
	mock_services "github.com/username/settlehub/src/services/mocks"
)

const testUserID int64 = 42

func withUser(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userIDContextKey, testUserID))
}

func newHandler(t *testing.T) (*SettlementHandler, *mock_services.MockSettlementService) {
	ctrl := gomock.NewController(t)
	svc := mock_services.NewMockSettlementService(ctrl)
	return NewSettlementHandler(svc, 1<<20), svc
}

func uploadRequest(t *testing.T, contentType string, data []byte, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="settlement.csv"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/settlements/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return withUser(req)
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func TestHandleUpload(t *testing.T) {
	h, svc := newHandler(t)
	csv := []byte("orderId,grossAmount\nA1,500\n")

	svc.EXPECT().
		ProcessUpload(gomock.Any(), services.UploadRequest{
			UserID:        testUserID,
			Filename:      "settlement.csv",
			Marketplace:   "amazon",
			ColumnMapping: `{"orderId":"Ref"}`,
			Data:          csv,
		}).
		Return(&services.UploadResult{BatchID: "b1", Count: 1}, nil)

	rr := httptest.NewRecorder()
	h.HandleUpload(rr, uploadRequest(t, "text/csv", csv, map[string]string{
		"marketplace":   "amazon",
		"columnMapping": `{"orderId":"Ref"}`,
	}))

	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "b1", body["batchId"])
	assert.EqualValues(t, 1, body["count"])
}

func TestHandleUpload_RejectsBeforeService(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		data        []byte
	}{
		{name: "declared image", contentType: "image/png", data: []byte("orderId\nA1\n")},
		{name: "sniffed html", contentType: "text/csv", data: []byte("<html><body>x</body></html>")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newHandler(t)
			rr := httptest.NewRecorder()
			h.HandleUpload(rr, uploadRequest(t, tt.contentType, tt.data, nil))
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestHandleUpload_TooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewSettlementHandler(mock_services.NewMockSettlementService(ctrl), 16)

	rr := httptest.NewRecorder()
	h.HandleUpload(rr, uploadRequest(t, "text/csv", []byte(strings.Repeat("a,b\n", 100)), nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleUpload_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "missing columns",
			err:        &settlement.MissingColumnsError{Marketplace: models.MarketplaceAmazon, Fields: []string{"settlementId"}},
			wantStatus: http.StatusBadRequest,
			wantDetail: "missingColumns",
		},
		{
			name:       "wrong platform",
			err:        &settlement.WrongPlatformError{Selected: models.MarketplaceAmazon, Suggested: models.MarketplaceFlipkart},
			wantStatus: http.StatusBadRequest,
			wantDetail: "suggestedMarketplace",
		},
		{name: "parse failure", err: fmt.Errorf("%w: bad", services.ErrParsingFailed), wantStatus: http.StatusBadRequest},
		{name: "bad marketplace", err: services.ErrInvalidMarketplace, wantStatus: http.StatusBadRequest},
		{name: "persistence", err: fmt.Errorf("%w: disk", services.ErrPersistenceFailed), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newHandler(t)
			svc.EXPECT().ProcessUpload(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rr := httptest.NewRecorder()
			h.HandleUpload(rr, uploadRequest(t, "text/csv", []byte("orderId,grossAmount\nA1,1\n"), nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			body := decodeBody(t, rr)
			assert.NotEmpty(t, body["error"])
			if tt.wantDetail != "" {
				details, ok := body["details"].(map[string]any)
				require.True(t, ok)
				assert.Contains(t, details, tt.wantDetail)
			}
		})
	}
}

func TestHandleGetSummary(t *testing.T) {
	h, svc := newHandler(t)
	result := &services.SummaryResult{Summary: models.BatchSummary{TotalSales: 500, OutputGST: 90, NetGST: 90}, GSTLiability: 90}

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	svc.EXPECT().
		GetSummary(gomock.Any(), testUserID, models.SummaryQuery{From: &from, To: &to}).
		Return(result, nil).
		Times(2)

	rr := httptest.NewRecorder()
	h.HandleGetSummary(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/settlements/summary?from=2024-03-01&to=2024-03-31", nil)))
	require.Equal(t, http.StatusOK, rr.Code)
	etag := rr.Header().Get("ETag")
	require.NotEmpty(t, etag)
	body := decodeBody(t, rr)
	assert.EqualValues(t, 90, body["gstLiability"])

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/settlements/summary?from=2024-03-01&to=2024-03-31", nil))
	req.Header.Set("If-None-Match", etag)
	rr = httptest.NewRecorder()
	h.HandleGetSummary(rr, req)
	assert.Equal(t, http.StatusNotModified, rr.Code)
}

func TestHandleGetSummary_BadInput(t *testing.T) {
	h, svc := newHandler(t)

	rr := httptest.NewRecorder()
	h.HandleGetSummary(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/settlements/summary?from=03/01/2024", nil)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	svc.EXPECT().GetSummary(gomock.Any(), testUserID, models.SummaryQuery{}).Return(nil, services.ErrInvalidSummaryQuery)
	rr = httptest.NewRecorder()
	h.HandleGetSummary(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/settlements/summary", nil)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	svc.EXPECT().GetSummary(gomock.Any(), testUserID, models.SummaryQuery{BatchID: "b1"}).Return(nil, fmt.Errorf("%w: db closed", services.ErrAggregationFailed))
	rr = httptest.NewRecorder()
	h.HandleGetSummary(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/settlements/summary?batchId=b1", nil)))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestHandleGetSummary_BatchIDIgnoresRange(t *testing.T) {
	h, svc := newHandler(t)
	svc.EXPECT().
		GetSummary(gomock.Any(), testUserID, models.SummaryQuery{BatchID: "b1"}).
		Return(&services.SummaryResult{}, nil)

	rr := httptest.NewRecorder()
	h.HandleGetSummary(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/settlements/summary?batchId=b1&from=not-a-date", nil)))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandleListBatchesAndRecords(t *testing.T) {
	h, svc := newHandler(t)

	svc.EXPECT().ListBatches(gomock.Any(), testUserID).Return([]models.BatchInfo{{BatchID: "b1", RecordsCount: 3}}, nil)
	rr := httptest.NewRecorder()
	h.HandleListBatches(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/settlements/batches", nil)))
	require.Equal(t, http.StatusOK, rr.Code)
	var batches []models.BatchInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &batches))
	assert.Equal(t, "b1", batches[0].BatchID)

	svc.EXPECT().GetRecords(gomock.Any(), testUserID, "b1", true).Return([]models.SettlementRecord{}, nil)
	rr = httptest.NewRecorder()
	h.HandleGetRecords(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/settlements?batchId=b1&includeRaw=true", nil)))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestHandleGetLatest_NotFound(t *testing.T) {
	h, svc := newHandler(t)
	svc.EXPECT().GetLatestUploadResult(gomock.Any(), testUserID).Return(nil, services.ErrNoUploads)

	rr := httptest.NewRecorder()
	h.HandleGetLatest(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/settlements/latest", nil)))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteRoutes(t *testing.T) {
	h, svc := newHandler(t)
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/settlements/batches/{batchId}", h.HandleDeleteBatch)
	mux.HandleFunc("POST /api/settlements/batches/delete", h.HandleDeleteBatches)
	mux.HandleFunc("DELETE /api/settlements/{id}", h.HandleDeleteRecord)

	serve := func(method, target, body string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, withUser(httptest.NewRequest(method, target, strings.NewReader(body))))
		return rr
	}

	svc.EXPECT().DeleteBatch(gomock.Any(), testUserID, "b1").Return(int64(4), nil)
	rr := serve(http.MethodDelete, "/api/settlements/batches/b1", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"deletedCount":4}`, rr.Body.String())

	svc.EXPECT().DeleteBatch(gomock.Any(), testUserID, "gone").Return(int64(0), services.ErrNoRecordsDeleted)
	rr = serve(http.MethodDelete, "/api/settlements/batches/gone", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	svc.EXPECT().DeleteBatches(gomock.Any(), testUserID, []string{"b2", "b3"}).Return(int64(6), nil)
	rr = serve(http.MethodPost, "/api/settlements/batches/delete", `{"batchIds":["b2","b3"]}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"deletedCount":6}`, rr.Body.String())

	rr = serve(http.MethodPost, "/api/settlements/batches/delete", `{"batchIds":[]}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	svc.EXPECT().DeleteRecord(gomock.Any(), testUserID, int64(17)).Return(int64(1), nil)
	rr = serve(http.MethodDelete, "/api/settlements/17", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(http.MethodDelete, "/api/settlements/abc", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	svc.EXPECT().DeleteRecord(gomock.Any(), testUserID, int64(18)).Return(int64(0), errors.New("locked"))
	rr = serve(http.MethodDelete, "/api/settlements/18", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestHandleGetColumns(t *testing.T) {
	h, svc := newHandler(t)
	svc.EXPECT().ColumnReference().Return([]columns.FieldAliases{{Field: columns.OrderID, Aliases: []string{"Order ID"}}})

	rr := httptest.NewRecorder()
	h.HandleGetColumns(rr, httptest.NewRequest(http.MethodGet, "/api/settlements/columns", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"field":"orderId","aliases":["Order ID"]}]`, rr.Body.String())
}

func TestAuthMiddleware(t *testing.T) {
	auth := security.NewAuthService("0123456789abcdef0123456789abcdef")
	var seen int64
	protected := NewAuthMiddleware(auth).Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": strconv.FormatInt(testUserID, 10),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/settlements/batches", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	protected.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, testUserID, seen)

	for name, header := range map[string]string{"missing": "", "empty bearer": "Bearer ", "bad token": "Bearer nope"} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/settlements/batches", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rr := httptest.NewRecorder()
			protected.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestHandlersRequireUser(t *testing.T) {
	h, _ := newHandler(t)

	rr := httptest.NewRecorder()
	h.HandleListBatches(rr, httptest.NewRequest(http.MethodGet, "/api/settlements/batches", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequestLogger(t *testing.T) {
	handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-1")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, "req-1", rr.Header().Get("X-Request-ID"))
}
