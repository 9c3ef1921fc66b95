package models

// CreditCard is a card payment method. Optional fields are nil when they were
// not supplied; an empty string is a supplied value.
type CreditCard struct {
	Number     string
	Expiration string // MMYY
	CardCode   *string
	Brand      *string
	// Track1 and Track2 hold the whole ASCII track including sentinels.
	// Either one is enough for a card-present transaction.
	Track1 *string
	Track2 *string
}

type CreditCardOption func(*CreditCard)

func WithCardCode(code string) CreditCardOption {
	return func(c *CreditCard) { c.CardCode = &code }
}

func WithBrand(brand string) CreditCardOption {
	return func(c *CreditCard) { c.Brand = &brand }
}

func WithTrack1(track string) CreditCardOption {
	return func(c *CreditCard) { c.Track1 = &track }
}

func WithTrack2(track string) CreditCardOption {
	return func(c *CreditCard) { c.Track2 = &track }
}

func NewCreditCard(number, expiration string, opts ...CreditCardOption) *CreditCard {
	card := &CreditCard{
		Number:     number,
		Expiration: expiration,
	}
	for _, opt := range opts {
		opt(card)
	}
	return card
}

func (c *CreditCard) Method() MethodType {
	return MethodCreditCard
}

// Fields exports the card for the gateway. Absent optional fields are left
// out; track data is sent without sentinels. Brand is never sent.
func (c *CreditCard) Fields() Fields {
	fields := Fields{
		FieldMethod:  string(MethodCreditCard),
		FieldCardNum: c.Number,
		FieldExpDate: c.Expiration,
	}

	if c.CardCode != nil {
		fields[FieldCardCode] = *c.CardCode
	}
	if c.Track1 != nil {
		fields[FieldTrack1] = StripSentinels(*c.Track1, Track1StartSentinel, TrackEndSentinel)
	}
	if c.Track2 != nil {
		fields[FieldTrack2] = StripSentinels(*c.Track2, Track2StartSentinel, TrackEndSentinel)
	}

	return fields
}

// CardPresent reports whether any track data was supplied.
func (c *CreditCard) CardPresent() bool {
	return c.Track1 != nil || c.Track2 != nil
}

var _ PaymentMethod = (*CreditCard)(nil)

// CreditCardRequest is the JSON form of a card accepted by the API and CLI.
// Omitted keys are absent fields.
type CreditCardRequest struct {
	Number     string  `json:"card_num"`
	Expiration string  `json:"exp_date"`
	CardCode   *string `json:"card_code,omitempty"`
	Brand      *string `json:"card_type,omitempty"`
	Track1     *string `json:"track1,omitempty"`
	Track2     *string `json:"track2,omitempty"`
}

func (r CreditCardRequest) ToCreditCard() *CreditCard {
	var opts []CreditCardOption
	if r.CardCode != nil {
		opts = append(opts, WithCardCode(*r.CardCode))
	}
	if r.Brand != nil {
		opts = append(opts, WithBrand(*r.Brand))
	}
	if r.Track1 != nil {
		opts = append(opts, WithTrack1(*r.Track1))
	}
	if r.Track2 != nil {
		opts = append(opts, WithTrack2(*r.Track2))
	}
	return NewCreditCard(r.Number, r.Expiration, opts...)
}
