package sync

import (
	"context"
	"pulseflow-service/internal/app/contracts"
	"pulseflow-service/internal/app/services/core/records"
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/exceptions"
	"strings"
	gosync "sync"
	"time"

	"go.uber.org/zap"
)

type syncController struct {
	Store                  *records.Store
	PatientRepository      contracts.PatientRepository
	PrescriptionRepository contracts.PrescriptionRepository
	DocumentRepository     contracts.DocumentRepository
	RedisRepository        contracts.RedisRepository
	Log                    *zap.Logger
	RefreshTimeout         time.Duration
}

func NewSyncController(
	store *records.Store,
	patientRepository contracts.PatientRepository,
	prescriptionRepository contracts.PrescriptionRepository,
	documentRepository contracts.DocumentRepository,
	redisRepository contracts.RedisRepository,
	log *zap.Logger,
	refreshTimeout time.Duration,
) SyncController {
	return &syncController{
		Store:                  store,
		PatientRepository:      patientRepository,
		PrescriptionRepository: prescriptionRepository,
		DocumentRepository:     documentRepository,
		RedisRepository:        redisRepository,
		Log:                    log,
		RefreshTimeout:         refreshTimeout,
	}
}

func (c *syncController) Refresh(ctx context.Context) error {
	c.Store.SetLoading(true)
	// loading always resets, whatever the outcome
	defer c.Store.SetLoading(false)

	patients, err := c.PatientRepository.FetchAll(ctx)
	if err != nil {
		refreshErr := exceptions.ErrRefreshCollection(err, constvars.ErrDevRefreshPatients)
		c.Store.SetErr(refreshErr)
		c.Log.Error("refresh failed, keeping previous snapshot",
			zap.String(constvars.LoggingCollectionKey, constvars.MongoCollectionPatients),
			zap.Error(err),
		)
		return refreshErr
	}

	prescriptions, err := c.PrescriptionRepository.FetchAll(ctx)
	if err != nil {
		refreshErr := exceptions.ErrRefreshCollection(err, constvars.ErrDevRefreshPrescriptions)
		c.Store.SetErr(refreshErr)
		c.Log.Error("refresh failed, keeping previous snapshot",
			zap.String(constvars.LoggingCollectionKey, constvars.MongoCollectionPrescriptions),
			zap.Error(err),
		)
		return refreshErr
	}

	documents, err := c.DocumentRepository.FetchAll(ctx)
	if err != nil {
		refreshErr := exceptions.ErrRefreshCollection(err, constvars.ErrDevRefreshDocuments)
		c.Store.SetErr(refreshErr)
		c.Log.Error("refresh failed, keeping previous snapshot",
			zap.String(constvars.LoggingCollectionKey, constvars.MongoCollectionDocuments),
			zap.Error(err),
		)
		return refreshErr
	}

	// wholesale replacement; never an incremental merge
	c.Store.ReplaceAll(patients, prescriptions, documents)
	return nil
}

func (c *syncController) Subscribe(ctx context.Context) func() {
	channels := []string{
		constvars.ChannelPatientsChanged,
		constvars.ChannelPrescriptionsChanged,
		constvars.ChannelDocumentsChanged,
	}
	subscription := c.RedisRepository.Subscribe(ctx, channels...)

	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case channel, ok := <-subscription.Events():
				if !ok {
					// the connection died without a teardown; the store
					// keeps serving but flags that it is no longer
					// notified of remote changes
					select {
					case <-done:
					default:
						subErr := exceptions.ErrSubscribeChannel(nil, strings.Join(channels, ", "))
						c.Store.SetErr(subErr)
						c.Log.Error("change subscription dropped", zap.Error(subErr))
					}
					return
				}
				c.Log.Debug("change notification received",
					zap.String(constvars.LoggingChannelKey, channel),
				)
				refreshCtx, cancel := context.WithTimeout(context.Background(), c.RefreshTimeout)
				// the notification carries no delta; always a full re-snapshot
				if err := c.Refresh(refreshCtx); err != nil {
					c.Log.Warn("notification-triggered refresh failed", zap.Error(err))
				}
				cancel()
			}
		}
	}()

	var once gosync.Once
	return func() {
		once.Do(func() {
			close(done)
			if err := subscription.Close(); err != nil {
				c.Log.Warn("change subscription close failed", zap.Error(err))
			}
		})
	}
}
