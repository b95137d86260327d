package signal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendRenewalEvent(t *testing.T) {
	var received []string
	SetDefaultNodeNotificationHandler(func(jsonEvent string) {
		received = append(received, jsonEvent)
	})
	defer ResetDefaultNodeNotificationHandler()

	SendRenewalEvent(RenewalFailed, RenewalFailedEvent{
		From:      "0x01",
		Labels:    []string{"alice"},
		ErrorCode: "ENSR-003",
		Error:     "upstream renewal failed",
	})
	require.Len(t, received, 1)

	var envelope struct {
		Type  string             `json:"type"`
		Event RenewalFailedEvent `json:"event"`
	}
	require.NoError(t, json.Unmarshal([]byte(received[0]), &envelope))
	require.Equal(t, string(RenewalFailed), envelope.Type)
	require.Equal(t, []string{"alice"}, envelope.Event.Labels)
	require.Equal(t, "ENSR-003", envelope.Event.ErrorCode)
}

func TestSendWithoutHandler(t *testing.T) {
	ResetDefaultNodeNotificationHandler()
	require.NotPanics(t, func() {
		SendRenewalEvent(RenewalCompleted, map[string]string{"id": "1"})
	})
}

func TestUnmarshalableEventIsDropped(t *testing.T) {
	called := false
	SetDefaultNodeNotificationHandler(func(string) { called = true })
	defer ResetDefaultNodeNotificationHandler()

	SendRenewalEvent(RenewalCompleted, make(chan int))
	require.False(t, called)
}
