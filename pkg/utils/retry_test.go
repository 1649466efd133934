package utils_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kusamnavya/shopping-cart/pkg/utils"
)

var errPermanent = errors.New("permanent")

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	cfg := utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, Multiplier: 2}

	calls := 0
	err := utils.Retry(cfg, func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	cfg := utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, Multiplier: 2}

	calls := 0
	err := utils.Retry(cfg, func() error {
		calls++
		return errors.New("transient")
	})

	assert.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_NonRetryableStopsImmediately(t *testing.T) {
	cfg := utils.RetryConfig{MaxAttempts: 5, InitialDelay: time.Millisecond, Multiplier: 2}

	calls := 0
	err := utils.Retry(cfg, func() error {
		calls++
		return fmt.Errorf("wrapped: %w", errPermanent)
	}, errPermanent)

	assert.ErrorIs(t, err, errPermanent)
	assert.Equal(t, 1, calls)
}

func TestRetry_ZeroConfigDefaults(t *testing.T) {
	calls := 0
	err := utils.Retry(utils.RetryConfig{InitialDelay: time.Millisecond}, func() error {
		calls++
		return errors.New("transient")
	})

	assert.Error(t, err)
	assert.Equal(t, 3, calls)
}
