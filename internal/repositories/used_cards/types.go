package used_cards

import (
	"errors"

	"github.com/KirkDiggler/imaginarium/internal/models"
)

var (
	// ErrNilConfig is returned when a constructor gets no config
	ErrNilConfig = errors.New("config cannot be nil")

	// ErrInvalidInput is returned for nil inputs and empty URLs
	ErrInvalidInput = errors.New("invalid input")
)

type AddUsedCardsInput struct {
	Cards []models.Card
}

type ClaimCardInput struct {
	Card models.Card
}

type GetUsedCardsInput struct{}

type GetUsedCardsOutput struct {
	Cards []models.Card
}

type ResetUsedCardsInput struct{}
