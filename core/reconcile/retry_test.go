package reconcile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetryOnce(t *testing.T) {
	errFirst := errors.New("first")
	errSecond := errors.New("second")

	t.Run("SucceedsFirstTime", func(t *testing.T) {
		calls := 0
		v, err := RetryOnce(func() (int, error) {
			calls++
			return 7, nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 7, v)
		assert.Equal(t, 1, calls)
	})

	t.Run("FailsOnceThenSucceeds", func(t *testing.T) {
		calls := 0
		v, err := RetryOnce(func() (int, error) {
			calls++
			if calls == 1 {
				return 0, errFirst
			}
			return 42, nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 42, v)
		assert.Equal(t, 2, calls)
	})

	t.Run("FailsTwice", func(t *testing.T) {
		calls := 0
		_, err := RetryOnce(func() (int, error) {
			calls++
			if calls == 1 {
				return 0, errFirst
			}
			return 0, errSecond
		})
		assert.ErrorIs(t, err, errSecond)
		assert.Equal(t, 2, calls)
	})
}

func TestRetryOnceErr(t *testing.T) {
	calls := 0
	err := RetryOnceErr(func() error {
		calls++
		return errFirstCall(calls)
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func errFirstCall(n int) error {
	if n == 1 {
		return errors.New("transient")
	}
	return nil
}
