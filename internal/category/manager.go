// Package category manages a wallet's category list against the remote
// API: optimistic local bookkeeping, server-assigned ID reconciliation,
// and a guard that keeps deletes from overlapping.
package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/Money-Together/moneytogether/internal/models"
)

var (
	// ErrPrecondition marks caller-contract violations such as updating a
	// category that never got an ID.
	ErrPrecondition = errors.New("precondition violated")

	// ErrUnknownCategory is returned when an ID is not in the list.
	ErrUnknownCategory = errors.New("unknown category")
)

// Gateway is the slice of the remote API the manager needs. The HTTP
// client implements it; tests substitute a deterministic fake.
type Gateway interface {
	// CreateCategory registers a category and returns it with the
	// server-assigned ID.
	CreateCategory(ctx context.Context, walletID uuid.UUID, c models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, walletID uuid.UUID, c models.Category) error
	DeleteCategory(ctx context.Context, walletID uuid.UUID, categoryID string) error
}

// Manager owns one wallet's in-memory category list. Safe for concurrent
// use; at most one delete is in flight at a time.
type Manager struct {
	gateway  Gateway
	walletID uuid.UUID

	mu         sync.Mutex
	categories []models.Category
	deleting   bool
}

// NewManager seeds a manager with the wallet's known categories.
func NewManager(gateway Gateway, walletID uuid.UUID, seed []models.Category) *Manager {
	return &Manager{
		gateway:    gateway,
		walletID:   walletID,
		categories: append([]models.Category(nil), seed...),
	}
}

// Categories returns a snapshot of the current list.
func (m *Manager) Categories() []models.Category {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Category(nil), m.categories...)
}

// Add registers a new category. A local UUID stands in as the ID for the
// duration of the call and is swapped for the server-assigned one before
// the category joins the list. The list is untouched on failure.
func (m *Manager) Add(ctx context.Context, c models.Category) (models.Category, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	created, err := m.gateway.CreateCategory(ctx, m.walletID, c)
	if err != nil {
		slog.Error("category create failed", "wallet_id", m.walletID, "name", c.Name, "error", err)
		return models.Category{}, fmt.Errorf("create category: %w", err)
	}
	if created.ID == "" {
		// Server did not assign one; keep the local ID rather than
		// admitting an unaddressable entry.
		created.ID = c.ID
	}

	m.mu.Lock()
	m.categories = append(m.categories, created)
	m.mu.Unlock()

	slog.Info("category created", "wallet_id", m.walletID, "category_id", created.ID)
	return created, nil
}

// Update replaces the category with c's ID. A category without an ID is a
// caller-contract violation, not a crash.
func (m *Manager) Update(ctx context.Context, c models.Category) error {
	if c.ID == "" {
		return fmt.Errorf("%w: category has no id", ErrPrecondition)
	}

	m.mu.Lock()
	idx := m.indexOf(c.ID)
	m.mu.Unlock()
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, c.ID)
	}

	if err := m.gateway.UpdateCategory(ctx, m.walletID, c); err != nil {
		slog.Error("category update failed", "wallet_id", m.walletID, "category_id", c.ID, "error", err)
		return fmt.Errorf("update category: %w", err)
	}

	m.mu.Lock()
	if idx = m.indexOf(c.ID); idx >= 0 {
		m.categories[idx] = c
	}
	m.mu.Unlock()
	return nil
}

// Delete removes the category after the remote call succeeds. While one
// delete is in flight any further Delete is a logged no-op, so a
// double-tap cannot fire two requests. On failure the list is unchanged.
func (m *Manager) Delete(ctx context.Context, categoryID string) error {
	m.mu.Lock()
	if m.deleting {
		m.mu.Unlock()
		slog.Warn("category delete already in flight, ignoring", "category_id", categoryID)
		return nil
	}
	m.deleting = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.deleting = false
		m.mu.Unlock()
	}()

	if err := m.gateway.DeleteCategory(ctx, m.walletID, categoryID); err != nil {
		slog.Error("category delete failed", "wallet_id", m.walletID, "category_id", categoryID, "error", err)
		return fmt.Errorf("delete category: %w", err)
	}

	m.mu.Lock()
	if idx := m.indexOf(categoryID); idx >= 0 {
		m.categories = append(m.categories[:idx], m.categories[idx+1:]...)
	}
	m.mu.Unlock()

	slog.Info("category deleted", "wallet_id", m.walletID, "category_id", categoryID)
	return nil
}

// indexOf is a linear ID lookup; callers hold m.mu.
func (m *Manager) indexOf(id string) int {
	for i, c := range m.categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}
