package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"pulseflow-service/internal/pkg/exceptions"
	"pulseflow-service/internal/pkg/utils"
)

func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = fmt.Errorf("%v", x)
				}

				// anything outside the error taxonomy is an unhandled
				// server fault
				var customErr *exceptions.CustomError
				if !errors.As(err, &customErr) {
					err = exceptions.ErrServerProcess(err)
				}

				utils.BuildErrorResponse(m.Log, w, err)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
