package utils

import (
	"context"
	"errors"
	"net/http"
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/dto/responses"
	"pulseflow-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	// a blown controller deadline surfaces as a gateway timeout
	if errors.Is(err, context.DeadlineExceeded) {
		err = exceptions.ErrServerDeadlineExceeded(err)
	}

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.String("file", customErr.Location.File),
			zap.Int("line", customErr.Location.Line),
			zap.String("function_name", customErr.Location.FunctionName),
		)
	} else {
		log.Error(err.Error())
	}

	response := responses.ResponseDTO{
		Success: false,
		Message: clientMessage,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}
