package store_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ece-platform/appforge/internal/adapters/outbound/store"
	"github.com/ece-platform/appforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppStore_SaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	s := store.NewAppStore(dir)

	app := &domain.GeneratedApp{
		ID:      "gen-1",
		OrderID: "order-1",
		Name:    "Metrics Hub",
		Card:    domain.CardData{Rarity: domain.RarityRare},
	}
	require.NoError(t, s.SaveApp(app))

	loaded, err := s.LoadApp("gen-1")
	require.NoError(t, err)
	assert.Equal(t, "Metrics Hub", loaded.Name)
	assert.Equal(t, domain.RarityRare, loaded.Card.Rarity)
}

func TestAppStore_LoadMissing(t *testing.T) {
	s := store.NewAppStore(t.TempDir())
	_, err := s.LoadApp("nope")
	assert.ErrorContains(t, err, "not found")
}

func TestAppStore_ListNewestFirst(t *testing.T) {
	s := store.NewAppStore(t.TempDir())
	older := &domain.GeneratedApp{ID: "a", CreatedAt: time.Now().Add(-time.Hour)}
	newer := &domain.GeneratedApp{ID: "b", CreatedAt: time.Now()}
	require.NoError(t, s.SaveApp(older))
	require.NoError(t, s.SaveApp(newer))

	apps, err := s.ListApps()
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "b", apps[0].ID)
}

func TestAppStore_ListEmptyDir(t *testing.T) {
	s := store.NewAppStore(t.TempDir())
	apps, err := s.ListApps()
	assert.NoError(t, err)
	assert.Empty(t, apps)
}

func seedCollection(t *testing.T, dir, name string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0644))
}

func TestUserStore_FindByWallet(t *testing.T) {
	dir := t.TempDir()
	seedCollection(t, dir, "users.json", []domain.User{
		{ID: "user-1", WalletAddress: "0xabc", ECEBalance: 250},
	})

	s := store.NewUserStore(dir)
	user, err := s.FindByWallet("0xabc")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, 250.0, user.ECEBalance)

	_, err = s.FindByWallet("0xmissing")
	assert.ErrorContains(t, err, "no user with wallet")
}

func TestOrderStore_MarkInProgress(t *testing.T) {
	dir := t.TempDir()
	seedCollection(t, dir, "orders.json", []domain.Order{
		{ID: "order-1", UserID: "user-1", EstimatedCost: 100, Status: domain.OrderStatusPending},
	})

	s := store.NewOrderStore(dir)
	require.NoError(t, s.MarkInProgress("order-1", "gen-9"))

	order, err := s.FindOrder("order-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusInProgress, order.Status)
	assert.Equal(t, "gen-9", order.GenerationID)
	assert.False(t, order.StartedAt.IsZero())
}

func TestOrderStore_MissingOrder(t *testing.T) {
	s := store.NewOrderStore(t.TempDir())
	assert.ErrorContains(t, s.MarkInProgress("nope", "gen"), "not found")
}
