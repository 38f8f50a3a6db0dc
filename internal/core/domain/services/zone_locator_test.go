package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/model/zone"
	"zonedelivery/internal/core/domain/services"
)

func TestZoneLocator_Locate(t *testing.T) {
	locator := services.NewZoneLocator()
	centro := newZone(t, "Centro", 0, 0, 10, 10, "10", true)

	t.Run("should find containing zone", func(t *testing.T) {
		got := locator.Locate(kernel.MustNewLocation(5, 5), []*zone.Zone{centro})
		require.NotNil(t, got)
		assert.Equal(t, "Centro", got.Name())
	})

	t.Run("should return nil outside every zone", func(t *testing.T) {
		assert.Nil(t, locator.Locate(kernel.MustNewLocation(50, 50), []*zone.Zone{centro}))
	})

	t.Run("should skip inactive zones", func(t *testing.T) {
		closed := newZone(t, "Antigua", 0, 0, 10, 10, "5", false)
		got := locator.Locate(kernel.MustNewLocation(5, 5), []*zone.Zone{closed, centro})
		require.NotNil(t, got)
		assert.Equal(t, "Centro", got.Name())
	})

	t.Run("should return the first of overlapping zones", func(t *testing.T) {
		inner := newZone(t, "Casco", 4, 4, 6, 6, "15", true)
		got := locator.Locate(kernel.MustNewLocation(5, 5), []*zone.Zone{inner, centro})
		require.NotNil(t, got)
		assert.Equal(t, "Casco", got.Name())
	})

	t.Run("should handle empty list", func(t *testing.T) {
		assert.Nil(t, locator.Locate(kernel.MustNewLocation(5, 5), nil))
	})
}
