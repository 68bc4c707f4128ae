package httpserver

import (
	"errors"
	"net/http"

	ingestiondomainerrors "tensio/contexts/vitals/ingestion-service/domain/errors"
	ingestiontransport "tensio/contexts/vitals/ingestion-service/transport/http"
)

func writeIngestionError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, ingestiontransport.ErrorResponse{Code: code, Message: message})
}

func writeIngestionDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ingestiondomainerrors.ErrInvalidRequest):
		writeIngestionError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, ingestiondomainerrors.ErrNoData):
		writeIngestionError(w, http.StatusNotFound, "no_data", err.Error())
	case errors.Is(err, ingestiondomainerrors.ErrSnapshotNotFound):
		writeIngestionError(w, http.StatusNotFound, "snapshot_not_found", err.Error())
	case errors.Is(err, ingestiondomainerrors.ErrInvalidSource):
		writeIngestionError(w, http.StatusBadGateway, "invalid_source", err.Error())
	case errors.Is(err, ingestiondomainerrors.ErrSourceUnavailable):
		writeIngestionError(w, http.StatusBadGateway, "source_unavailable", err.Error())
	default:
		writeIngestionError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
