package shared

// Asynq task type names.
const (
	TypeRefreshBatchStatuses = "inventory:refresh_statuses"
	TypeGenerateExpiryAlerts = "alert:generate_expiry"
)

// Queue names, in priority order.
const (
	QueueInventory = "inventory"
	QueueAlert     = "alert"
)

// RefreshBatchStatusesPayload is the (empty) payload of the nightly status
// refresh job.
type RefreshBatchStatusesPayload struct{}

// GenerateExpiryAlertsPayload is the (empty) payload of the expiry alert
// sweep job.
type GenerateExpiryAlertsPayload struct{}
