package gateway

import (
	"fmt"

	"github.com/alovak/cardflow-gateway/gateway/iso8583"
	"github.com/alovak/cardflow-gateway/gateway/models"
	"github.com/alovak/cardflow-gateway/internal/pan"
	"golang.org/x/exp/slog"
)

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// ExportFields returns the flat gateway fields for the card.
func (s *Service) ExportFields(req models.CreditCardRequest) models.Fields {
	card := req.ToCreditCard()
	fields := card.Fields()

	s.logger.Debug("exported card fields",
		slog.String("pan", pan.Mask(card.Number)),
		slog.Bool("card_present", card.CardPresent()),
		slog.Int("fields", len(fields)),
	)

	return fields
}

// BuildISO8583 packs a card-present or keyed authorization request for the card.
func (s *Service) BuildISO8583(req models.CreditCardRequest) ([]byte, error) {
	card := req.ToCreditCard()

	packed, err := iso8583.PackAuthorizationRequest(card)
	if err != nil {
		return nil, fmt.Errorf("building authorization request: %w", err)
	}

	s.logger.Debug("packed authorization request",
		slog.String("pan", pan.Mask(card.Number)),
		slog.Int("bytes", len(packed)),
	)

	return packed, nil
}
