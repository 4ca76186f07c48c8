package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/username/settlehub/src/logger"
	"github.com/username/settlehub/src/models"
	"github.com/username/settlehub/src/parsers/settlement"
	"github.com/username/settlehub/src/security/validation"
	"github.com/username/settlehub/src/services"
	"github.com/username/settlehub/src/utils"
)

type SettlementHandler struct {
	settlementService  services.SettlementService
	maxUploadSizeBytes int64
}

func NewSettlementHandler(service services.SettlementService, maxUploadSizeBytes int64) *SettlementHandler {
	return &SettlementHandler{
		settlementService:  service,
		maxUploadSizeBytes: maxUploadSizeBytes,
	}
}

// multipart overhead allowed on top of the file itself
const formOverheadBytes = 1 << 20

func (h *SettlementHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}
	log := logger.FromContext(r.Context())
	maxMB := h.maxUploadSizeBytes / (1024 * 1024)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSizeBytes+formOverheadBytes)
	if err := r.ParseMultipartForm(h.maxUploadSizeBytes); err != nil {
		log.Warn("Failed to parse multipart form or request too large", "error", err, "limit", h.maxUploadSizeBytes)
		utils.SendJSONError(w, fmt.Sprintf("Failed to parse form or request too large (max %d MB)", maxMB), http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		log.Warn("Failed to retrieve file from request", "error", err)
		utils.SendJSONError(w, "Failed to retrieve file from request. Ensure 'file' field is used.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if fileHeader.Size > h.maxUploadSizeBytes {
		log.Warn("Uploaded file header reports size too large", "fileSize", fileHeader.Size, "limit", h.maxUploadSizeBytes)
		utils.SendJSONError(w, fmt.Sprintf("File too large, max %d MB", maxMB), http.StatusBadRequest)
		return
	}

	clientContentType := fileHeader.Header.Get("Content-Type")
	if err := validation.ValidateClientContentType(clientContentType); err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	detectedContentType, err := validation.ValidateFileContentByMagicBytes(file)
	if errors.Is(err, validation.ErrUnsupportedFileType) {
		log.Warn("Server-side file content validation failed", "filename", fileHeader.Filename, "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Error("Failed to inspect uploaded file", "filename", fileHeader.Filename, "error", err)
		utils.SendJSONError(w, "Failed to read uploaded file", http.StatusInternalServerError)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error("Failed to read uploaded file", "filename", fileHeader.Filename, "error", err)
		utils.SendJSONError(w, "Failed to read uploaded file", http.StatusBadRequest)
		return
	}

	log.Info("Processing settlement upload", "filename", fileHeader.Filename, "detectedType", detectedContentType, "size", len(data))
	result, err := h.settlementService.ProcessUpload(r.Context(), services.UploadRequest{
		UserID:        userID,
		Filename:      fileHeader.Filename,
		Marketplace:   r.FormValue("marketplace"),
		ColumnMapping: r.FormValue("columnMapping"),
		Data:          data,
	})
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}

func (h *SettlementHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}

	query, err := summaryQueryFromRequest(r)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.settlementService.GetSummary(r.Context(), userID, query)
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	sendWithETag(w, r, result)
}

func summaryQueryFromRequest(r *http.Request) (models.SummaryQuery, error) {
	q := r.URL.Query()
	query := models.SummaryQuery{BatchID: q.Get("batchId")}
	if query.BatchID != "" {
		return query, nil
	}
	for _, p := range []struct {
		name string
		dst  **time.Time
	}{{"from", &query.From}, {"to", &query.To}} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		day, err := utils.ParseDay(raw)
		if err != nil {
			return query, fmt.Errorf("invalid %s date %q, expected YYYY-MM-DD", p.name, raw)
		}
		*p.dst = &day
	}
	return query, nil
}

// sendWithETag writes data as JSON, or 304 when the client already holds it.
func sendWithETag(w http.ResponseWriter, r *http.Request, data any) {
	log := logger.FromContext(r.Context())
	w.Header().Set("Cache-Control", "no-cache, private")

	currentETag, etagErr := utils.GenerateETag(data)
	if etagErr != nil {
		log.Error("Failed to generate ETag", "error", etagErr)
	} else {
		quotedETag := fmt.Sprintf("\"%s\"", currentETag)
		w.Header().Set("ETag", quotedETag)
		if utils.ETagMatches(r.Header.Get("If-None-Match"), quotedETag) {
			log.Debug("ETag match", "etag", currentETag)
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}
	utils.WriteJSON(w, http.StatusOK, data)
}

func (h *SettlementHandler) HandleListBatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}
	batches, err := h.settlementService.ListBatches(r.Context(), userID)
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, batches)
}

func (h *SettlementHandler) HandleGetRecords(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}
	includeRaw, _ := strconv.ParseBool(r.URL.Query().Get("includeRaw"))

	records, err := h.settlementService.GetRecords(r.Context(), userID, r.URL.Query().Get("batchId"), includeRaw)
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, records)
}

func (h *SettlementHandler) HandleGetLatest(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}
	result, err := h.settlementService.GetLatestUploadResult(r.Context(), userID)
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}
	sendWithETag(w, r, result)
}

type deletedResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

func (h *SettlementHandler) HandleDeleteBatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}
	batchID := r.PathValue("batchId")
	if batchID == "" {
		utils.SendJSONError(w, "batchId is required", http.StatusBadRequest)
		return
	}

	n, err := h.settlementService.DeleteBatch(r.Context(), userID, batchID)
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, deletedResponse{DeletedCount: n})
}

func (h *SettlementHandler) HandleDeleteBatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}

	var body struct {
		BatchIDs []string `json:"batchIds"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&body); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(body.BatchIDs) == 0 {
		utils.SendJSONError(w, "batchIds must list at least one batch", http.StatusBadRequest)
		return
	}

	n, err := h.settlementService.DeleteBatches(r.Context(), userID, body.BatchIDs)
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, deletedResponse{DeletedCount: n})
}

func (h *SettlementHandler) HandleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}
	recordID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || recordID <= 0 {
		utils.SendJSONError(w, "record id must be a positive integer", http.StatusBadRequest)
		return
	}

	n, err := h.settlementService.DeleteRecord(r.Context(), userID, recordID)
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, deletedResponse{DeletedCount: n})
}

// HandleGetColumns publishes the alias table the resolver matches headers against.
func (h *SettlementHandler) HandleGetColumns(w http.ResponseWriter, r *http.Request) {
	sendWithETag(w, r, h.settlementService.ColumnReference())
}

func (h *SettlementHandler) sendServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	var missing *settlement.MissingColumnsError
	var wrong *settlement.WrongPlatformError
	switch {
	case errors.As(err, &missing):
		log.Warn("Upload rejected: missing columns", "fields", missing.Fields)
		utils.SendJSONErrorWithDetails(w, missing.Error(), map[string]any{"missingColumns": missing.Fields}, http.StatusBadRequest)
	case errors.As(err, &wrong):
		log.Warn("Upload rejected: wrong marketplace", "selected", wrong.Selected, "suggested", wrong.Suggested)
		utils.SendJSONErrorWithDetails(w, wrong.Error(), map[string]any{"suggestedMarketplace": wrong.Suggested}, http.StatusBadRequest)
	case errors.Is(err, services.ErrParsingFailed),
		errors.Is(err, services.ErrInvalidMarketplace),
		errors.Is(err, services.ErrInvalidColumnMapping),
		errors.Is(err, services.ErrInvalidSummaryQuery):
		log.Warn("Request rejected", "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrNoRecordsDeleted), errors.Is(err, services.ErrNoUploads):
		utils.SendJSONError(w, err.Error(), http.StatusNotFound)
	default:
		log.Error("Internal error handling settlement request", "path", r.URL.Path, "error", err)
		utils.SendJSONError(w, "An internal error occurred. Please try again later.", http.StatusInternalServerError)
	}
}
