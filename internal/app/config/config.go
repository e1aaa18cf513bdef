package config

import (
	"pulseflow-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "pulseflow"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Driver:              utils.GetEnvString("LOGGER_DRIVER", "zap"),
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			Bucket:   utils.GetEnvString("MINIO_BUCKET", "pulseflow-documents"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			SuperadminAPIKeyHash:     utils.GetEnvString("APP_SUPERADMIN_API_KEY_HASH", ""),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "defaultSecret"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 12),
		},
		Diagnosis: AppDiagnosis{
			BaseUrl:                 utils.GetEnvString("DIAGNOSIS_BASE_URL", "http://localhost:9090"),
			RequestTimeoutInSeconds: utils.GetEnvInt("DIAGNOSIS_REQUEST_TIMEOUT_IN_SECONDS", 20),
			FallbackEnabled:         utils.GetEnvBool("DIAGNOSIS_FALLBACK_ENABLED", true),
		},
		Clinic: AppClinic{
			DefaultLocationID:            utils.GetEnvString("CLINIC_DEFAULT_LOCATION_ID", "main"),
			DocumentURLExpiryTimeInHours: utils.GetEnvInt("CLINIC_DOCUMENT_URL_EXPIRY_TIME_IN_HOURS", 1),
			RefreshTimeoutInSeconds:      utils.GetEnvInt("CLINIC_REFRESH_TIMEOUT_IN_SECONDS", 15),
		},
	}
}
