package handlers

import (
	"errors"
	"net/http"

	appErrors "github.com/zaiboost/zaiboost/internal/app/errors"
	"github.com/zaiboost/zaiboost/internal/app/logger"
	"go.uber.org/zap"
)

const (
	errMsgUnableReadBody  = "Unable to read body"
	errMsgUnableParseBody = "Unable to parse body"
)

//easyjson:json
type ErrorResponse struct {
	Error  string   `json:"error"`
	Code   int      `json:"code"`
	Fields []string `json:"fields,omitempty"`
}

func PrepareError(w http.ResponseWriter, err error) {
	var codeErr appErrors.ResponseCodeError
	if errors.As(err, &codeErr) {
		if codeErr.Code() >= http.StatusInternalServerError {
			logger.Log.Error("internal error", zap.Error(err))
		} else {
			logger.Log.Debug("request rejected", zap.Int("code", codeErr.Code()), zap.Error(err))
		}
		writeErrorResponse(w, ErrorResponse{Error: codeErr.Msg(), Code: codeErr.Code(), Fields: codeErr.Fields()})
		return
	}
	logger.Log.Error("internal error", zap.Error(err))
	WriteJSONErrorResponse(w, "Internal Server Error", http.StatusInternalServerError)
}

func WriteJSONErrorResponse(w http.ResponseWriter, message string, code int) {
	writeErrorResponse(w, ErrorResponse{Error: message, Code: code})
}

func writeErrorResponse(w http.ResponseWriter, er ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	json, err := er.MarshalJSON()
	if err != nil {
		logger.Log.Error("failed to marshal error response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(er.Code)
	w.Write(json)
}
