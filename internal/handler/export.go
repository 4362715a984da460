package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/templui/challenge/internal/model"
	"github.com/templui/challenge/internal/service"
)

type ExportHandler struct {
	exportService *service.ExportService
}

func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=challenge-export-%s.csv", time.Now().Format(model.DateLayout)))

	err := h.exportService.WriteCSV(r.Context(), w)
	if err != nil {
		w.Header().Del("Content-Disposition")
		writeServiceError(w, r, err, "Failed to export achievements")
		return
	}
}

func (h *ExportHandler) Archive(w http.ResponseWriter, r *http.Request) {
	archive, err := h.exportService.Archive(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to archive export")
		return
	}

	writeJSON(w, http.StatusCreated, archive)
}
