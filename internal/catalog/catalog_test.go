package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusDisplay(t *testing.T) {
	assert.Equal(t, "Normal", StatusNormal.Display())
	assert.Equal(t, "Written Off", StatusWrittenOff.Display())
	assert.Equal(t, "In Bundle", StatusInBundle.Display())
	// unknown statuses fall back to their raw value
	assert.Equal(t, "WEIRD", Status("WEIRD").Display())
}

func TestNormalizeBundleCode(t *testing.T) {
	assert.Equal(t, "A12", NormalizeBundleCode("a12"))
	assert.Equal(t, "A12", NormalizeBundleCode("  A12  "))
	assert.Equal(t, "SET-01", NormalizeBundleCode("set-01"))
	assert.Equal(t, "", NormalizeBundleCode("   "))
}

func TestBundleAvailable(t *testing.T) {
	normal := Bundle{ID: "set1", Status: StatusNormal}
	member := func(status Status) Book { return Book{ID: "b", Status: status} }

	t.Run("available", func(t *testing.T) {
		assert.True(t, BundleAvailable(normal, []Book{member(StatusInBundle), member(StatusInBundle)}))
	})

	t.Run("empty bundle is unavailable", func(t *testing.T) {
		assert.False(t, BundleAvailable(normal, nil))
	})

	t.Run("non normal bundle is unavailable", func(t *testing.T) {
		for _, s := range []Status{StatusBorrowed, StatusPreparing, StatusLost} {
			assert.False(t, BundleAvailable(Bundle{Status: s}, []Book{member(StatusInBundle)}), "status %s", s)
		}
	})

	t.Run("any member out of place blocks the bundle", func(t *testing.T) {
		for _, s := range []Status{StatusNormal, StatusBorrowed, StatusLost, StatusWrittenOff} {
			assert.False(t, BundleAvailable(normal, []Book{member(StatusInBundle), member(s)}), "member status %s", s)
		}
	})
}
