package repository

import (
	"context"
	"testing"

	"github.com/apsystem/apsview/internal/testutil"
	"github.com/apsystem/apsview/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ theme.Store = (*SQLiteSettingRepo)(nil)

func TestSettingRepo_MissingKeyIsEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	v, err := NewSQLiteSettingRepo(db).GetSetting(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestSettingRepo_SetOverwrites(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.SetSetting(ctx, theme.SettingKey, "dark"))
	require.NoError(t, repo.SetSetting(ctx, theme.SettingKey, "gray"))

	v, err := repo.GetSetting(ctx, theme.SettingKey)
	require.NoError(t, err)
	assert.Equal(t, "gray", v)
}

func TestSettingRepo_BacksThemeManager(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	m := theme.NewManager(NewSQLiteSettingRepo(db))
	_, err := m.Set(ctx, "dark")
	require.NoError(t, err)

	reloaded := theme.NewManager(NewSQLiteSettingRepo(db))
	got, err := reloaded.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, got)
}
