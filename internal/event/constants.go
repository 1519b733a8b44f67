package event

// EventSchemaVersion is stamped on every event built by the constructors
const EventSchemaVersion = "1.0"

// Metadata keys
const (
	// MetadataKeySource names the tracker operation that earned the XP
	MetadataKeySource = "source"
	// MetadataKeyOperation names the mutation behind a state.changed event
	MetadataKeyOperation = "operation"
)

// LogMsgHandlerErrorFormat joins the failures of one Publish
const LogMsgHandlerErrorFormat = "%d handler(s) failed for event %s: %v"
