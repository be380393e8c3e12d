package guard_test

import (
	"errors"
	"testing"

	"foodorder/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type address struct {
		street string
		guard  guard.ConstructorGuard
	}

	var errAddressNotConstructed = errors.New("address must be created via newAddress")

	newAddress := func(street string) (address, error) {
		if street == "" {
			return address{}, errors.New("street is required")
		}
		return address{street: street, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		a, err := newAddress("12 Sukhumvit Road")

		require.NoError(t, err)
		require.NoError(t, a.guard.Validate(errAddressNotConstructed))
		assert.Equal(t, "12 Sukhumvit Road", a.street)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var a address

		err := a.guard.Validate(errAddressNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errAddressNotConstructed, err)
	})
}
