// Package moneytogether wires the client core together for a host
// application: configuration, logging, the login session, and the API
// client. UI layers construct one App at startup and hang their screens'
// sessions off it.
package moneytogether

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Money-Together/moneytogether/internal/api"
	"github.com/Money-Together/moneytogether/internal/auth"
	"github.com/Money-Together/moneytogether/internal/category"
	"github.com/Money-Together/moneytogether/internal/config"
	"github.com/Money-Together/moneytogether/internal/models"
	"github.com/Money-Together/moneytogether/internal/moneyfmt"
	"github.com/Money-Together/moneytogether/internal/moneylog"
	"github.com/Money-Together/moneytogether/internal/settlement"
	"github.com/Money-Together/moneytogether/pkg/logging"
)

// App is the assembled client core.
type App struct {
	Config  *config.Config
	Session *auth.Session
	API     *api.Client
}

// New loads configuration from the environment, installs logging, and
// builds the API client.
func New() (*App, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logging.Init(cfg.LogLevel)

	session := auth.NewSession()
	client := api.NewClient(cfg.APIBaseURL,
		api.WithSession(session),
		api.WithRetries(cfg.MaxRetries),
		api.WithTimeout(cfg.RequestTimeout),
	)

	return &App{Config: cfg, Session: session, API: client}, nil
}

// Login authenticates against the API and installs the session token.
func (a *App) Login(ctx context.Context, email, password string) error {
	_, err := a.API.Login(ctx, email, password)
	return err
}

// Formatter builds the amount formatter from the configured separators.
func (a *App) Formatter() moneyfmt.Formatter {
	return moneyfmt.Formatter{
		GroupSep:          a.Config.GroupSeparator,
		DecimalSep:        a.Config.DecimalSeparator,
		MaxFractionDigits: a.Config.MaxFractionDigits,
	}
}

// NewMoneyLogCreate starts a create-mode money-log edit flow.
func (a *App) NewMoneyLogCreate(wallet models.Wallet, meID uuid.UUID, emit func(moneylog.Event)) *moneylog.EditSession {
	return moneylog.NewCreateSession(wallet, meID, emit)
}

// NewMoneyLogUpdate starts an update-mode edit flow over orig.
func (a *App) NewMoneyLogUpdate(wallet models.Wallet, meID uuid.UUID, orig models.MoneyLog, emit func(moneylog.Event)) *moneylog.EditSession {
	return moneylog.NewUpdateSession(wallet, meID, orig, emit)
}

// NewMemberSelection starts a roster-selection flow seeded from the
// current settlement entries.
func (a *App) NewMemberSelection(wallet models.Wallet, current []models.SettlementMember, meID uuid.UUID, emit func(settlement.Event)) *settlement.SelectionSession {
	return settlement.NewSelectionSession(wallet.Members, current, meID, emit)
}

// NewCategoryManager builds the category list manager for a wallet.
func (a *App) NewCategoryManager(walletID uuid.UUID, seed []models.Category) *category.Manager {
	return category.NewManager(a.API, walletID, seed)
}
