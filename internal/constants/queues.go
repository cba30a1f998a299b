package constants

const (
	QueueSmsSend      = "sms.send"
	QueueNotifyOffice = "notify.office"
)

// Queues lists every queue the services declare on startup.
var Queues = []string{QueueSmsSend, QueueNotifyOffice}
