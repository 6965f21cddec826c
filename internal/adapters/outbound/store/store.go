// Package store persists platform records as JSON files under a data
// directory. Apps get one file each; users and orders live in single
// collection files maintained by the marketplace.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/ece-platform/appforge/internal/domain"
)

// AppStore implements domain.AppStore on the filesystem.
type AppStore struct {
	dir string
}

func NewAppStore(dataDir string) *AppStore {
	return &AppStore{dir: filepath.Join(dataDir, "apps")}
}

func (s *AppStore) SaveApp(app *domain.GeneratedApp) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(app, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.appPath(app.ID), data, 0644)
}

func (s *AppStore) LoadApp(id string) (*domain.GeneratedApp, error) {
	data, err := os.ReadFile(s.appPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("app %s not found", id)
		}
		return nil, err
	}
	var app domain.GeneratedApp
	if err := json.Unmarshal(data, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *AppStore) ListApps() ([]*domain.GeneratedApp, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var apps []*domain.GeneratedApp
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		app, err := s.LoadApp(entry.Name()[:len(entry.Name())-len(".json")])
		if err != nil {
			continue // skip unreadable records
		}
		apps = append(apps, app)
	}
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].CreatedAt.After(apps[j].CreatedAt)
	})
	return apps, nil
}

func (s *AppStore) appPath(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// UserStore implements domain.UserStore over a single users.json file.
type UserStore struct {
	path string
}

func NewUserStore(dataDir string) *UserStore {
	return &UserStore{path: filepath.Join(dataDir, "users.json")}
}

func (s *UserStore) FindByWallet(walletAddress string) (*domain.User, error) {
	var users []domain.User
	if err := readCollection(s.path, &users); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].WalletAddress == walletAddress {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("no user with wallet %s", walletAddress)
}

// OrderStore implements domain.OrderStore over a single orders.json file.
// Updates are serialized with a mutex because the HTTP API handles requests
// concurrently.
type OrderStore struct {
	mu   sync.Mutex
	path string
}

func NewOrderStore(dataDir string) *OrderStore {
	return &OrderStore{path: filepath.Join(dataDir, "orders.json")}
}

func (s *OrderStore) FindOrder(id string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []domain.Order
	if err := readCollection(s.path, &orders); err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, fmt.Errorf("order %s not found", id)
}

func (s *OrderStore) MarkInProgress(id, generationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []domain.Order
	if err := readCollection(s.path, &orders); err != nil {
		return err
	}
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = domain.OrderStatusInProgress
			orders[i].GenerationID = generationID
			orders[i].StartedAt = time.Now()
			return writeCollection(s.path, orders)
		}
	}
	return fmt.Errorf("order %s not found", id)
}

func readCollection(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // empty collection
		}
		return err
	}
	return json.Unmarshal(data, out)
}

func writeCollection(path string, in any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
