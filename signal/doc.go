// Package signal implements event-based signalling between the renewal
// service and the process hosting it. Events are encoded as JSON envelopes and
// passed synchronously to the registered handler.
package signal
