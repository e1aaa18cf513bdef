package sessions

import (
	"context"
	"pulseflow-service/internal/app/config"
	"pulseflow-service/internal/app/contracts"
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/dto/requests"
	"pulseflow-service/internal/pkg/exceptions"
	"pulseflow-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	JWTConfig       config.AppJWT
}

func NewSessionService(redisRepository contracts.RedisRepository, jwtConfig config.AppJWT) SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		JWTConfig:       jwtConfig,
	}
}

func (svc *sessionService) Login(ctx context.Context, request *requests.Login) (string, error) {
	expiry := time.Duration(svc.JWTConfig.ExpTimeInHour) * time.Hour
	session := &models.Session{
		SessionID: utils.NewEntityID(),
		UserID:    request.UserID,
		Role:      request.Role,
		ExpiresAt: time.Now().Add(expiry),
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return "", exceptions.ErrCannotParseJSON(err)
	}

	err = svc.RedisRepository.Set(ctx, constvars.RedisKeySessionPrefix+session.SessionID, string(sessionJSON), expiry)
	if err != nil {
		return "", err
	}

	return utils.GenerateSessionJWT(session.SessionID, svc.JWTConfig.Secret, svc.JWTConfig.ExpTimeInHour)
}

func (svc *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, constvars.RedisKeySessionPrefix+sessionID)
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}
	return svc.ParseSessionData(sessionData)
}

func (svc *sessionService) ParseSessionData(sessionData string) (*models.Session, error) {
	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}
