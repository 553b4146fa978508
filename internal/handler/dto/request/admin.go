package request

import (
	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/inventory"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/usecase/commands"

	"github.com/google/uuid"
)

type RegisterAgentRequest struct {
	UserID      *uuid.UUID `json:"user_id"`
	DisplayName string     `json:"display_name" binding:"required,max=100"`
	Categories  []string   `json:"categories" binding:"required,min=1"`
	MaxActive   int        `json:"max_active" binding:"required,min=1"`
}

func (r RegisterAgentRequest) ToParams() (commands.RegisterAgentParams, error) {
	cats, err := parseCategories(r.Categories)
	if err != nil {
		return commands.RegisterAgentParams{}, err
	}
	p := commands.RegisterAgentParams{
		DisplayName: r.DisplayName,
		Categories:  cats,
		MaxActive:   r.MaxActive,
	}
	if r.UserID != nil {
		p.UserID = *r.UserID
	}
	return p, nil
}

type UpdateAgentRequest struct {
	DisplayName *string  `json:"display_name" binding:"omitempty,max=100"`
	Categories  []string `json:"categories"`
	Available   *bool    `json:"available"`
	MaxActive   *int     `json:"max_active" binding:"omitempty,min=1"`
}

func (r UpdateAgentRequest) ToParams() (commands.UpdateAgentParams, error) {
	var cats []category.Category
	if r.Categories != nil {
		var err error
		if cats, err = parseCategories(r.Categories); err != nil {
			return commands.UpdateAgentParams{}, err
		}
	}
	return commands.UpdateAgentParams{
		DisplayName: r.DisplayName,
		Categories:  cats,
		Available:   r.Available,
		MaxActive:   r.MaxActive,
	}, nil
}

type ImportCodesRequest struct {
	Codes []inventory.Entry `json:"codes" binding:"required,min=1,max=10000"`
}

type SetPricingRequest struct {
	Category string `json:"category" binding:"required"`
	Variant  string `json:"variant"`
	// Amount is in naira, e.g. "1500" or "1500.50"
	Amount string `json:"amount" binding:"required"`
}

func (r SetPricingRequest) Parse() (category.Category, money.Money, error) {
	cat, err := category.Parse(r.Category)
	if err != nil {
		return "", money.Money{}, errs.Mark(err, errs.ErrInvalidPayload)
	}
	fee, err := money.Parse(r.Amount)
	if err != nil {
		return "", money.Money{}, errs.Mark(err, errs.ErrInvalidPayload)
	}
	return cat, fee, nil
}

type FundWalletRequest struct {
	Amount    string `json:"amount" binding:"required"`
	Reference string `json:"reference" binding:"required,max=128"`
}

func (r FundWalletRequest) ParseAmount() (money.Money, error) {
	amount, err := money.Parse(r.Amount)
	if err != nil {
		return money.Money{}, errs.Mark(err, errs.ErrInvalidPayload)
	}
	return amount, nil
}

func parseCategories(raw []string) ([]category.Category, error) {
	cats := make([]category.Category, 0, len(raw))
	for _, s := range raw {
		c, err := category.Parse(s)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidPayload)
		}
		cats = append(cats, c)
	}
	return cats, nil
}
