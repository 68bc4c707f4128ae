package httpserver

import (
	"errors"
	"net/http"

	dashboarddomainerrors "tensio/contexts/vitals/dashboard-service/domain/errors"
	dashboardtransport "tensio/contexts/vitals/dashboard-service/transport/http"
	ingestiondomainerrors "tensio/contexts/vitals/ingestion-service/domain/errors"
)

func writeDashboardError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, dashboardtransport.ErrorResponse{Code: code, Message: message})
}

// The dashboard reads through the ingestion pipeline, so source errors
// surface here too.
func writeDashboardDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dashboarddomainerrors.ErrUnknownChart):
		writeDashboardError(w, http.StatusBadRequest, "unknown_chart", err.Error())
	case errors.Is(err, dashboarddomainerrors.ErrInvalidRequest):
		writeDashboardError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, dashboarddomainerrors.ErrNoData):
		writeDashboardError(w, http.StatusNotFound, "no_data", err.Error())
	case errors.Is(err, dashboarddomainerrors.ErrExportFailed):
		writeDashboardError(w, http.StatusInternalServerError, "export_failed", err.Error())
	case errors.Is(err, ingestiondomainerrors.ErrInvalidRequest):
		writeDashboardError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, ingestiondomainerrors.ErrNoData):
		writeDashboardError(w, http.StatusNotFound, "no_data", err.Error())
	case errors.Is(err, ingestiondomainerrors.ErrInvalidSource),
		errors.Is(err, ingestiondomainerrors.ErrSourceUnavailable):
		writeDashboardError(w, http.StatusBadGateway, "source_unavailable", err.Error())
	default:
		writeDashboardError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
