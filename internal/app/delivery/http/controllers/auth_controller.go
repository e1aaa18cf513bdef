package controllers

import (
	"net/http"
	"pulseflow-service/internal/app/services/core/sessions"
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/dto/requests"
	"pulseflow-service/internal/pkg/exceptions"
	"pulseflow-service/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	SessionService sessions.SessionService
}

var (
	authControllerInstance *AuthController
	onceAuthController     sync.Once
)

func NewAuthController(logger *zap.Logger, sessionService sessions.SessionService) *AuthController {
	onceAuthController.Do(func() {
		instance := &AuthController{
			Log:            logger,
			SessionService: sessionService,
		}
		authControllerInstance = instance
	})
	return authControllerInstance
}

// Login provisions a staff session token. The service never issues tokens
// from end-user credentials: the caller must already carry the operator
// identity, normally established through the superadmin API key.
func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	session := sessionFromRequest(r)
	if session == nil || session.Role != constvars.RoleAdmin {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrOperatorOnly(nil))
		return
	}

	request := new(requests.Login)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	token, err := ctrl.SessionService.Login(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestIDFromRequest(r)),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, map[string]string{"token": token})
}
