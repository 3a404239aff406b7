package repositories_test

import (
	"context"
	"testing"

	"gudang/internal/models"
	"gudang/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestGORMSettingsRepository(t *testing.T) {
	repo := repositories.NewGORMSettingsRepository(newTestDB(t))
	ctx := context.Background()

	t.Run("Create and get", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, models.NewDefaultSettings("u1")))

		settings, err := repo.GetByUserID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, models.DefaultCurrency, settings.Currency)
		assert.Equal(t, models.DefaultAppName, settings.AppName)
		assert.JSONEq(t, `{}`, string(settings.UnitPreferences))
	})

	t.Run("Duplicate user is a store error", func(t *testing.T) {
		err := repo.Create(ctx, models.NewDefaultSettings("u1"))
		var storeErr *repositories.StoreError
		assert.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "create settings", storeErr.Op)
	})

	t.Run("Get missing", func(t *testing.T) {
		settings, err := repo.GetByUserID(ctx, "nobody")
		assert.Nil(t, settings)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("Update overwrites every field", func(t *testing.T) {
		update := &models.Settings{
			UserID:          "u1",
			Currency:        "IDR",
			AppName:         "",
			UnitPreferences: datatypes.JSON(`{"flour":"kg","milk":"l"}`),
		}
		require.NoError(t, repo.Update(ctx, update))
		assert.NotZero(t, update.ID)

		settings, err := repo.GetByUserID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "IDR", settings.Currency)
		assert.Equal(t, "", settings.AppName)
		assert.JSONEq(t, `{"flour":"kg","milk":"l"}`, string(settings.UnitPreferences))
	})

	t.Run("Update missing", func(t *testing.T) {
		err := repo.Update(ctx, &models.Settings{UserID: "nobody", UnitPreferences: datatypes.JSON(`{}`)})
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}
