package handler

import (
	"net/http"

	"smashlabs-backend/internal/usecase"
	"smashlabs-backend/pkg/response"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase}
}

func (h *ReportHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportUsecase.Summary(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build summary report")
		return
	}

	response.Success(w, http.StatusOK, "Summary report retrieved successfully", summary)
}
