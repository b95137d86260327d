package signal

type SignalType string

const (
	RenewalCompleted = SignalType("renewal.completed")
	RenewalFailed    = SignalType("renewal.failed")
)

// RenewalFailedEvent reports an invocation that was rolled back.
type RenewalFailedEvent struct {
	From      string   `json:"from"`
	Labels    []string `json:"labels"`
	ErrorCode string   `json:"errorCode,omitempty"`
	Error     string   `json:"error"`
}

// SendRenewalEvent sends event from services/renewal.
func SendRenewalEvent(signalType SignalType, event interface{}) {
	send(string(signalType), event)
}
