package log

// Field names shared across packages so log output stays greppable.
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldMonth      = "month"
	FieldYear       = "year"
	FieldReportID   = "report_id"
	FieldCategory   = "category"
	FieldValue      = "value"
)

// Component names carried by every logger built with NewComponent.
const (
	ComponentApp    = "app"
	ComponentWorker = "worker"
)
