package iso8583

import (
	"fmt"

	"github.com/alovak/cardflow-gateway/gateway/models"
	"github.com/alovak/cardflow-gateway/internal/expiry"
	"github.com/moov-io/iso8583"
)

const (
	MTIAuthorizationRequest = "0100"

	// POS entry modes (DE22): PAN entry mode + PIN capability.
	EntryModeMagneticStripe = "901"
	EntryModeManual         = "012"
)

// NewAuthorizationRequest returns a 0100 message carrying the card data
// elements. Track data is stripped of sentinels the same way as the gateway
// field export; a missing track leaves its data element unset. Callers add
// amount, STAN and the other transaction fields.
func NewAuthorizationRequest(card *models.CreditCard) (*iso8583.Message, error) {
	expYYMM, err := expiry.ToYYMM(card.Expiration)
	if err != nil {
		return nil, fmt.Errorf("converting expiration: %w", err)
	}

	entryMode := EntryModeManual
	if card.CardPresent() {
		entryMode = EntryModeMagneticStripe
	}

	message := iso8583.NewMessage(Spec)
	message.MTI(MTIAuthorizationRequest)

	values := map[int]string{
		2:  card.Number,
		14: expYYMM,
		22: entryMode,
	}
	if card.Track2 != nil {
		values[35] = models.StripSentinels(*card.Track2, models.Track2StartSentinel, models.TrackEndSentinel)
	}
	if card.Track1 != nil {
		values[45] = models.StripSentinels(*card.Track1, models.Track1StartSentinel, models.TrackEndSentinel)
	}

	for id, value := range values {
		if err := message.Field(id, value); err != nil {
			return nil, fmt.Errorf("setting field %d: %w", id, err)
		}
	}

	return message, nil
}

// PackAuthorizationRequest builds and packs the authorization request for card.
func PackAuthorizationRequest(card *models.CreditCard) ([]byte, error) {
	message, err := NewAuthorizationRequest(card)
	if err != nil {
		return nil, err
	}

	packed, err := message.Pack()
	if err != nil {
		return nil, fmt.Errorf("packing message: %w", err)
	}

	return packed, nil
}
