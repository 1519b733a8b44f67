package sse

import "time"

// Buffer sizes
const (
	BroadcastBufferSize = 100
	ClientEventBuffer   = 50

	// ReplayBufferSize is how many recent events a reconnecting client can catch up on
	ReplayBufferSize = 32
)

// KeepaliveInterval keeps idle proxies from closing the stream
const KeepaliveInterval = 30 * time.Second

// HeaderLastEventID is sent by EventSource when it reconnects
const HeaderLastEventID = "Last-Event-ID"

// Stream-only event types. Tracker events keep their bus type names.
const (
	// EventTypeConnected is the first message on every stream
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Query parameters
const (
	// QueryParamTypes filters a stream to a comma separated list of event types
	QueryParamTypes = "types"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, dropping event"
	LogMsgClientLagging      = "SSE client buffer full, skipping event"
	LogMsgReplayed           = "Replayed missed SSE events"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgPayloadDecode      = "Unexpected SSE event payload"
	LogMsgSubscriberReady    = "SSE subscriber registered for event types"
)
