package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/colorwin/internal/models"
)

func TestValidateColor(t *testing.T) {
	t.Run("valid color", func(t *testing.T) {
		color, err := ValidateColor("green")
		require.NoError(t, err)
		assert.Equal(t, models.ColorGreen, color)
	})

	t.Run("empty color", func(t *testing.T) {
		_, err := ValidateColor("")
		assert.ErrorIs(t, err, ErrNoColor)
	})

	t.Run("unknown color", func(t *testing.T) {
		_, err := ValidateColor("blue")
		require.Error(t, err)
	})
}

func TestValidateAmount(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateAmount(50, 500))
	})

	t.Run("minimum stake exactly", func(t *testing.T) {
		assert.NoError(t, ValidateAmount(models.MinStake, 500))
	})

	t.Run("whole balance", func(t *testing.T) {
		assert.NoError(t, ValidateAmount(500, 500))
	})

	t.Run("below minimum stake", func(t *testing.T) {
		err := ValidateAmount(5, 500)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "minimum stake")
	})

	t.Run("exceeds known balance", func(t *testing.T) {
		assert.ErrorIs(t, ValidateAmount(600, 500), ErrInsufficientBalance)
	})
}
