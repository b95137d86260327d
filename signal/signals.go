package signal

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/grailsmarket/ens-referrals/logutils"
)

// Envelope is a general signal sent upward from the renewal service.
type Envelope struct {
	Type  string      `json:"type"`
	Event interface{} `json:"event"`
}

// NewEnvelope creates new envelope of given type and event payload.
func NewEnvelope(typ string, event interface{}) *Envelope {
	return &Envelope{
		Type:  typ,
		Event: event,
	}
}

// NodeNotificationHandler defines a handler able to process incoming node events.
// Events are encoded as JSON strings.
type NodeNotificationHandler func(jsonEvent string)

var (
	notificationHandler NodeNotificationHandler = nil
	mu                  sync.RWMutex
)

// send marshals the event into an envelope and hands it to the handler.
// Nothing happens when no handler is set.
func send(typ string, event interface{}) {
	mu.RLock()
	handler := notificationHandler
	mu.RUnlock()
	if handler == nil {
		return
	}

	data, err := json.Marshal(NewEnvelope(typ, event))
	if err != nil {
		logutils.ZapLogger().Error("marshalling signal envelope", zap.String("type", typ), zap.Error(err))
		return
	}
	handler(string(data))
}

// SetDefaultNodeNotificationHandler sets notification handler to invoke on Send
func SetDefaultNodeNotificationHandler(fn NodeNotificationHandler) {
	mu.Lock()
	defer mu.Unlock()
	notificationHandler = fn
}

// ResetDefaultNodeNotificationHandler removes the notification handler
func ResetDefaultNodeNotificationHandler() {
	SetDefaultNodeNotificationHandler(nil)
}
