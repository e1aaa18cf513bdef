package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"pulseflow-service/internal/app/config"
	"pulseflow-service/internal/app/delivery/http/controllers"
	"pulseflow-service/internal/app/delivery/http/middlewares"
	"pulseflow-service/internal/app/delivery/http/routers"
	"pulseflow-service/internal/app/drivers/database"
	"pulseflow-service/internal/app/drivers/logger"
	"pulseflow-service/internal/app/drivers/messaging"
	"pulseflow-service/internal/app/drivers/storage"
	"pulseflow-service/internal/app/services/core/consultations"
	"pulseflow-service/internal/app/services/core/documents"
	"pulseflow-service/internal/app/services/core/patients"
	"pulseflow-service/internal/app/services/core/prescriptions"
	"pulseflow-service/internal/app/services/core/records"
	"pulseflow-service/internal/app/services/core/sessions"
	"pulseflow-service/internal/app/services/core/sync"
	"pulseflow-service/internal/app/services/shared/activitylog"
	sharedredis "pulseflow-service/internal/app/services/shared/redis"
	sharedstorage "pulseflow-service/internal/app/services/shared/storage"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapingTheApp(&bootstrap, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Shutdown finished with errors", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, minioClient *minio.Client) {
	log := bootstrap.Logger
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared infrastructure
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	objectStorage := sharedstorage.NewMinioStorage(minioClient, bootstrap.DriverConfig.Minio.Bucket)

	activityLog, err := activitylog.NewService(bootstrap.RabbitMQ, log)
	if err != nil {
		log.Fatal("Failed to set up activity queue", zap.Error(err))
	}
	workerStop, err := activitylog.StartWorker(bootstrap.RabbitMQ, bootstrap.MongoDB.Database(dbName), log)
	if err != nil {
		log.Fatal("Failed to start activity worker", zap.Error(err))
	}
	bootstrap.WorkerStop = workerStop

	// Record store + repositories
	store := records.NewStore()
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	prescriptionRepository := prescriptions.NewPrescriptionMongoRepository(bootstrap.MongoDB, dbName)
	documentRepository := documents.NewDocumentMongoRepository(bootstrap.MongoDB, dbName)

	// Sync controller: initial snapshot plus change-notification listeners
	refreshTimeout := time.Duration(bootstrap.InternalConfig.Clinic.RefreshTimeoutInSeconds) * time.Second
	syncController := sync.NewSyncController(
		store,
		patientRepository,
		prescriptionRepository,
		documentRepository,
		redisRepository,
		log,
		refreshTimeout,
	)

	refreshCtx, cancelRefresh := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancelRefresh()
	if err := syncController.Refresh(refreshCtx); err != nil {
		// the store keeps serving empty data with its error flag set; a
		// change notification or manual refresh recovers it
		log.Error("Initial snapshot failed", zap.Error(err))
	}
	bootstrap.SyncStop = syncController.Subscribe(context.Background())

	// Usecases
	patientUsecase := patients.NewPatientUsecase(store, patientRepository, redisRepository, activityLog, log)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(store, prescriptionRepository, patientUsecase, redisRepository, activityLog, log)
	documentUsecase := documents.NewDocumentUsecase(
		store,
		documentRepository,
		objectStorage,
		redisRepository,
		activityLog,
		log,
		time.Duration(bootstrap.InternalConfig.Clinic.DocumentURLExpiryTimeInHours)*time.Hour,
	)
	diagnosisClient := consultations.NewDiagnosisHttpClient(bootstrap.InternalConfig.Diagnosis, log)
	consultationUsecase := consultations.NewConsultationUsecase(store, diagnosisClient, patientUsecase, prescriptionUsecase, log)
	sessionService := sessions.NewSessionService(redisRepository, bootstrap.InternalConfig.JWT)

	// Delivery
	mws := middlewares.NewMiddlewares(log, sessionService, bootstrap.InternalConfig)
	authController := controllers.NewAuthController(log, sessionService)
	recordController := controllers.NewRecordController(log, store, syncController)
	patientController := controllers.NewPatientController(log, patientUsecase)
	documentController := controllers.NewDocumentController(log, documentUsecase)
	prescriptionController := controllers.NewPrescriptionController(log, prescriptionUsecase)
	consultationController := controllers.NewConsultationController(log, consultationUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mws,
		authController,
		recordController,
		patientController,
		documentController,
		prescriptionController,
		consultationController,
	)
}
