package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingPatientIDKey    = "patient_id"
	LoggingUHIDKey         = "uhid"
	LoggingUserIDKey       = "user_id"
	LoggingChannelKey      = "channel"
	LoggingCollectionKey   = "collection"
	LoggingResourceTypeKey = "resource_type"
	LoggingResourceIDKey   = "resource_id"
)
