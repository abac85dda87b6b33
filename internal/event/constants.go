package event

// EventSchemaVersion is stamped on every event built by the NewXxxEvent constructors
const EventSchemaVersion = "1.0"

// MetadataKeySessionID carries the publishing session on tagged buses
const MetadataKeySessionID = "session_id"

// LogMsgHandlerErrorFormat joins handler failures returned from Publish
const LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
