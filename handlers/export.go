package handlers

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"timesheet/apperror"
	"timesheet/service"
	"timesheet/storage"

	"github.com/google/uuid"
)

type ExportHandler struct {
	entries *service.TimeEntryService
	archive storage.Storage
	log     *slog.Logger
	pending sync.WaitGroup
}

// NewExportHandler wires the CSV download. archive may be nil to disable
// archiving.
func NewExportHandler(entries *service.TimeEntryService, archive storage.Storage, log *slog.Logger) *ExportHandler {
	return &ExportHandler{
		entries: entries,
		archive: archive,
		log:     log,
	}
}

func (h *ExportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "Invalid month or year")
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 || year > 9999 {
		writeError(w, http.StatusBadRequest, "Invalid month or year")
		return
	}

	var projectID *uuid.UUID
	if raw := r.URL.Query().Get("projectId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid projectId")
			return
		}
		projectID = &id
	}

	data, err := h.entries.ExportCSV(r.Context(), year, month, projectID)
	if err != nil {
		if apperror.Is(err, apperror.KindValidation) {
			writeError(w, http.StatusBadRequest, apperror.PublicMessage(err))
			return
		}
		h.log.ErrorContext(r.Context(), "generate csv report", "year", year, "month", month, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate CSV report")
		return
	}

	filename := fmt.Sprintf("timesheet-report-%d-%d.csv", month, year)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)

	if h.archive != nil {
		ctx := context.WithoutCancel(r.Context())
		h.pending.Add(1)
		go func() {
			defer h.pending.Done()
			h.archiveReport(ctx, year, month, data)
		}()
	}
}

// Wait blocks until every archive upload started by ExportCSV has finished.
func (h *ExportHandler) Wait() {
	h.pending.Wait()
}

// archiveReport stores a copy of the export after the download has been
// written. Failures are logged only.
func (h *ExportHandler) archiveReport(ctx context.Context, year, month int, data []byte) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	key := storage.ArchiveKey(year, month, uuid.New())
	location, err := h.archive.Upload(ctx, key, "text/csv", bytes.NewReader(data))
	if err != nil {
		h.log.WarnContext(ctx, "archive csv report", "key", key, "error", err)
		return
	}
	h.log.InfoContext(ctx, "csv report archived", "location", location)
}
