package api

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Money-Together/moneytogether/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type walletDTO struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	BaseCurrency string      `json:"base_currency"`
	HasCashbox   bool        `json:"has_cashbox"`
	Members      []memberDTO `json:"members"`
}

type memberDTO struct {
	ID         string `json:"id"`
	Nickname   string `json:"nickname"`
	ProfileImg string `json:"profile_img,omitempty"`
}

func (w walletDTO) toModel() (models.Wallet, error) {
	id, err := uuid.Parse(w.ID)
	if err != nil {
		return models.Wallet{}, fmt.Errorf("wallet id %q: %w", w.ID, err)
	}
	wallet := models.Wallet{
		ID:           id,
		Name:         w.Name,
		BaseCurrency: models.Currency(w.BaseCurrency),
		HasCashbox:   w.HasCashbox,
		Members:      make([]models.WalletMember, 0, len(w.Members)),
	}
	for _, m := range w.Members {
		mid, err := uuid.Parse(m.ID)
		if err != nil {
			return models.Wallet{}, fmt.Errorf("member id %q: %w", m.ID, err)
		}
		wallet.Members = append(wallet.Members, models.WalletMember{
			ID:         mid,
			Nickname:   m.Nickname,
			ProfileImg: m.ProfileImg,
		})
	}
	return wallet, nil
}

type categoryDTO struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

func categoryFromModel(c models.Category) categoryDTO {
	return categoryDTO{
		ID:    c.ID,
		Name:  c.Name,
		Icon:  c.Icon.ID,
		Color: c.Color.ID,
	}
}

func (c categoryDTO) toModel() models.Category {
	return models.Category{
		ID:    c.ID,
		Name:  c.Name,
		Icon:  models.Icon{ID: c.Icon},
		Color: models.PaletteColor{ID: c.Color},
	}
}
