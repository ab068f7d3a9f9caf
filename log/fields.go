package log

// Common field names for structured logging.
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldPath      = "path"
	FieldRecord    = "record"
	FieldRow       = "row"
	FieldReason    = "reason"
)

// Components defines standard component names.
const (
	ComponentApp    = "app"
	ComponentLedger = "ledger"
	ComponentFiles  = "files"
	ComponentMenu   = "menu"
)
