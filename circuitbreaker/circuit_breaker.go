// Package circuitbreaker runs a call against an ordered list of providers,
// each guarded by its own hystrix circuit, and returns the first success.
package circuitbreaker

import (
	"context"
	"fmt"

	"github.com/afex/hystrix-go/hystrix"
)

type Func func(ctx context.Context) ([]any, error)

type functorCallStatus struct {
	name string
	err  error
}

type CommandResult struct {
	res                 []any
	err                 error
	provider            string
	cancelled           bool
	functorCallStatuses []functorCallStatus
}

func (cr CommandResult) Result() []any {
	return cr.res
}

func (cr CommandResult) Error() error {
	return cr.err
}

// Provider is the circuit name of the functor that produced the result.
func (cr CommandResult) Provider() string {
	return cr.provider
}

func (cr CommandResult) Cancelled() bool {
	return cr.cancelled
}

func (cr CommandResult) FunctorCallStatuses() []functorCallStatus {
	return cr.functorCallStatuses
}

func (cr *CommandResult) addCallStatus(circuitName string, err error) {
	cr.functorCallStatuses = append(cr.functorCallStatuses, functorCallStatus{
		name: circuitName,
		err:  err,
	})
}

type Command struct {
	ctx      context.Context
	functors []*Functor
	cancel   bool
}

func NewCommand(ctx context.Context, functors []*Functor) *Command {
	return &Command{
		ctx:      ctx,
		functors: functors,
	}
}

func (cmd *Command) Add(ftor *Functor) {
	cmd.functors = append(cmd.functors, ftor)
}

func (cmd *Command) IsEmpty() bool {
	return len(cmd.functors) == 0
}

// Cancel stops the command from trying the remaining functors.
func (cmd *Command) Cancel() {
	cmd.cancel = true
}

type Config struct {
	Timeout                int `json:"Timeout"`
	MaxConcurrentRequests  int `json:"MaxConcurrentRequests"`
	RequestVolumeThreshold int `json:"RequestVolumeThreshold"`
	SleepWindow            int `json:"SleepWindow"`
	ErrorPercentThreshold  int `json:"ErrorPercentThreshold"`
}

type CircuitBreaker struct {
	config Config
}

func NewCircuitBreaker(config Config) *CircuitBreaker {
	return &CircuitBreaker{
		config: config,
	}
}

type Functor struct {
	exec        Func
	circuitName string
}

func NewFunctor(exec Func, circuitName string) *Functor {
	return &Functor{
		exec:        exec,
		circuitName: circuitName,
	}
}

func CircuitExists(circuitName string) bool {
	_, ok := hystrix.GetCircuitSettings()[circuitName]
	return ok
}

// IsCircuitOpen reports whether the circuit with the given name currently
// rejects calls.
func IsCircuitOpen(circuitName string) bool {
	if !CircuitExists(circuitName) {
		return false
	}
	circuit, _, err := hystrix.GetCircuit(circuitName)
	if err != nil {
		return false
	}
	return circuit.IsOpen()
}

// Execute runs the functors in order until one succeeds. Each functor runs in
// its own circuit, configured on first use. The last functor runs directly when
// its circuit is open, so a command is never rejected without a single attempt.
// Errors of failed functors are accumulated. This is a blocking function.
func (cb *CircuitBreaker) Execute(cmd *Command) CommandResult {
	if cmd == nil || cmd.IsEmpty() {
		return CommandResult{err: fmt.Errorf("command is nil or empty")}
	}

	var result CommandResult
	ctx := cmd.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	for i, f := range cmd.functors {
		if cmd.cancel {
			result.cancelled = true
			break
		}

		if hystrix.GetCircuitSettings()[f.circuitName] == nil {
			hystrix.ConfigureCommand(f.circuitName, hystrix.CommandConfig{
				Timeout:                cb.config.Timeout,
				MaxConcurrentRequests:  cb.config.MaxConcurrentRequests,
				RequestVolumeThreshold: cb.config.RequestVolumeThreshold,
				SleepWindow:            cb.config.SleepWindow,
				ErrorPercentThreshold:  cb.config.ErrorPercentThreshold,
			})
		}

		var (
			res []any
			err error
		)
		if i == len(cmd.functors)-1 && IsCircuitOpen(f.circuitName) {
			res, err = f.exec(ctx)
		} else {
			err = hystrix.DoC(ctx, f.circuitName, func(ctx context.Context) error {
				var err error
				res, err = f.exec(ctx)
				return err
			}, nil)
		}
		result.addCallStatus(f.circuitName, err)

		if err == nil {
			result.res = res
			result.err = nil
			result.provider = f.circuitName
			break
		}

		if result.err != nil {
			result.err = fmt.Errorf("%w, %s.error: %w", result.err, f.circuitName, err)
		} else {
			result.err = fmt.Errorf("%s.error: %w", f.circuitName, err)
		}
	}

	return result
}
