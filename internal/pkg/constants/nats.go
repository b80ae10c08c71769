package constants

// NATS subjects for out-of-band notification dispatch.
// The push/email workers consuming these live outside this service.
const (
	SubjectNotifyPush      = "notify.push"
	SubjectNotifyEmergency = "notify.emergency"
)
