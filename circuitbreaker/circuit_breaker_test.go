package circuitbreaker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/afex/hystrix-go/hystrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const success = "Success"

// unique circuit names keep `go test -count` runs independent
func circuitName(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

func TestCircuitBreaker_ExecuteSuccessSingle(t *testing.T) {
	cb := NewCircuitBreaker(Config{
		Timeout:                1000,
		MaxConcurrentRequests:  100,
		RequestVolumeThreshold: 10,
		SleepWindow:            10,
		ErrorPercentThreshold:  10,
	})

	name := circuitName("SuccessSingle")
	cmd := NewCommand(context.TODO(), []*Functor{
		NewFunctor(func(context.Context) ([]any, error) {
			return []any{success}, nil
		}, name)},
	)

	result := cb.Execute(cmd)
	require.NoError(t, result.Error())
	require.Equal(t, success, result.Result()[0].(string))
	require.Equal(t, name, result.Provider())
	require.False(t, result.Cancelled())
}

func TestCircuitBreaker_ExecuteMultipleFallbacksFail(t *testing.T) {
	cb := NewCircuitBreaker(Config{
		Timeout:                10,
		MaxConcurrentRequests:  100,
		RequestVolumeThreshold: 10,
		SleepWindow:            10,
		ErrorPercentThreshold:  10,
	})

	name := circuitName("ExecuteMultipleFallbacksFail")
	errSecProvFailed := errors.New("provider 2 failed")
	errThirdProvFailed := errors.New("provider 3 failed")
	cmd := NewCommand(context.TODO(), []*Functor{
		NewFunctor(func(context.Context) ([]any, error) {
			time.Sleep(100 * time.Millisecond) // hystrix: timeout
			return []any{success}, nil
		}, name+"1"),
		NewFunctor(func(context.Context) ([]any, error) {
			return nil, errSecProvFailed
		}, name+"2"),
		NewFunctor(func(context.Context) ([]any, error) {
			return nil, errThirdProvFailed
		}, name+"3"),
	})

	result := cb.Execute(cmd)
	require.Error(t, result.Error())
	assert.ErrorIs(t, result.Error(), hystrix.ErrTimeout)
	assert.ErrorIs(t, result.Error(), errSecProvFailed)
	assert.ErrorIs(t, result.Error(), errThirdProvFailed)
	assert.Len(t, result.FunctorCallStatuses(), 3)
}

func TestCircuitBreaker_ExecuteSwitchToWorkingProviderOnVolumeThresholdReached(t *testing.T) {
	cb := NewCircuitBreaker(Config{
		RequestVolumeThreshold: 10,
	})

	name := circuitName("SwitchToWorkingProvider")

	prov1Called := 0
	prov2Called := 0
	for i := 0; i < 20; i++ {
		cmd := NewCommand(context.TODO(), []*Functor{
			NewFunctor(func(context.Context) ([]any, error) {
				prov1Called++
				return nil, errors.New("provider 1 failed")
			}, name+"1"),
			NewFunctor(func(context.Context) ([]any, error) {
				prov2Called++
				return []any{success}, nil
			}, name+"2"),
		})

		result := cb.Execute(cmd)
		require.NoError(t, result.Error())
		require.Equal(t, success, result.Result()[0].(string))
		require.Equal(t, name+"2", result.Provider())
	}

	assert.Equal(t, 10, prov1Called)
	assert.Equal(t, 20, prov2Called)
	assert.True(t, IsCircuitOpen(name+"1"))
	assert.False(t, IsCircuitOpen(name+"2"))
}

func TestCircuitBreaker_CommandCancel(t *testing.T) {
	cb := NewCircuitBreaker(Config{})

	name := circuitName("CommandCancel")

	prov1Called := 0
	prov2Called := 0
	expectedErr := errors.New("provider 1 failed")

	cmd := NewCommand(context.TODO(), nil)
	cmd.Add(NewFunctor(func(context.Context) ([]any, error) {
		prov1Called++
		cmd.Cancel()
		return nil, expectedErr
	}, name+"1"))
	cmd.Add(NewFunctor(func(context.Context) ([]any, error) {
		prov2Called++
		return nil, errors.New("provider 2 failed")
	}, name+"2"))

	result := cb.Execute(cmd)
	require.ErrorIs(t, result.Error(), expectedErr)
	require.True(t, result.Cancelled())

	assert.Equal(t, 1, prov1Called)
	assert.Equal(t, 0, prov2Called)
}

func TestCircuitBreaker_EmptyOrNilCommand(t *testing.T) {
	cb := NewCircuitBreaker(Config{})
	result := cb.Execute(NewCommand(context.TODO(), nil))
	require.Error(t, result.Error())
	result = cb.Execute(nil)
	require.Error(t, result.Error())
}

func TestCircuitBreaker_LastFunctorRunsWhenCircuitOpen(t *testing.T) {
	cb := NewCircuitBreaker(Config{
		RequestVolumeThreshold: 1,
		SleepWindow:            50000,
		ErrorPercentThreshold:  1,
	})

	name := circuitName("LastFunctor")
	expectedErr := errors.New("provider failed")

	for !IsCircuitOpen(name + "1") {
		cmd := NewCommand(context.TODO(), nil)
		cmd.Add(NewFunctor(func(context.Context) ([]any, error) {
			return nil, expectedErr
		}, name+"1"))
		cmd.Add(NewFunctor(func(context.Context) ([]any, error) {
			return []any{success}, nil
		}, name+"2"))
		require.NoError(t, cb.Execute(cmd).Error())
	}
	require.True(t, CircuitExists(name+"1"))

	called := 0
	cmd := NewCommand(context.TODO(), []*Functor{
		NewFunctor(func(context.Context) ([]any, error) {
			called++
			return []any{success}, nil
		}, name+"1"),
	})
	result := cb.Execute(cmd)
	require.NoError(t, result.Error())
	require.Equal(t, 1, called)
}

func TestCircuitBreaker_ContextIsPassedToFunctor(t *testing.T) {
	type key struct{}
	cb := NewCircuitBreaker(Config{})
	ctx := context.WithValue(context.Background(), key{}, "value")

	cmd := NewCommand(ctx, []*Functor{
		NewFunctor(func(ctx context.Context) ([]any, error) {
			return []any{ctx.Value(key{})}, nil
		}, circuitName("Context")),
	})
	result := cb.Execute(cmd)
	require.NoError(t, result.Error())
	require.Equal(t, "value", result.Result()[0])
}
