package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Driver              string
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		Bucket   string
		UseSSL   bool
	}
)
