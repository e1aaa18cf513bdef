package config

type InternalConfig struct {
	App       App
	JWT       AppJWT
	Diagnosis AppDiagnosis
	Clinic    AppClinic
}

type App struct {
	Env                      string
	Port                     string
	Version                  string
	Timezone                 string
	EndpointPrefix           string
	MaxRequests              int
	ShutdownTimeoutInSeconds int
	SuperadminAPIKeyHash     string
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppDiagnosis struct {
	BaseUrl                 string
	RequestTimeoutInSeconds int
	// FallbackEnabled substitutes the rule-based engine when the remote
	// collaborator fails.
	FallbackEnabled bool
}

type AppClinic struct {
	DefaultLocationID            string
	DocumentURLExpiryTimeInHours int
	// RefreshTimeoutInSeconds bounds one full-snapshot fetch pass.
	RefreshTimeoutInSeconds int
}
