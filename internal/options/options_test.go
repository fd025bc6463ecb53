package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errNegative = errors.New("value cannot be negative")

type testConfig struct {
	value int
	name  string
	calls []string
}

func withValue(v int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if v < 0 {
			return errNegative
		}
		c.value = v
		c.calls = append(c.calls, "value")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, withValue(10), withName("ce"), withValue(20)))
		require.Equal(t, 20, cfg.value)
		require.Equal(t, "ce", cfg.name)
		require.Equal(t, []string{"value", "name", "value"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withValue(5), withValue(-1), withName("skipped"))
		require.ErrorIs(t, err, errNegative)
		require.Equal(t, 5, cfg.value)
		require.Empty(t, cfg.name)
	})

	t.Run("empty and nil options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg))
		require.NoError(t, Apply(cfg, nil, withName("x")))
		require.Equal(t, "x", cfg.name)
	})
}

func TestGenericTargets(t *testing.T) {
	var n int
	opt := NoError(func(p *int) { *p = 42 })
	require.NoError(t, opt.apply(&n))
	require.Equal(t, 42, n)
}
