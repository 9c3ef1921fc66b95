package models

import (
	"net/url"
)

// MethodType discriminates payment methods in the flat gateway format.
type MethodType string

const (
	MethodCreditCard MethodType = "CC"
)

// Field names of the gateway wire format.
const (
	FieldMethod   = "method"
	FieldCardNum  = "card_num"
	FieldExpDate  = "exp_date"
	FieldCardCode = "card_code"
	FieldTrack1   = "track1"
	FieldTrack2   = "track2"
)

// PaymentMethod is implemented by every payment method that can be submitted
// to the gateway. Fields must always contain FieldMethod set to Method().
type PaymentMethod interface {
	Method() MethodType
	Fields() Fields
}

// Fields is the flat field-name to value mapping sent to the gateway.
type Fields map[string]string

func (f Fields) Values() url.Values {
	values := make(url.Values, len(f))
	for k, v := range f {
		values.Set(k, v)
	}
	return values
}

// Encode returns the fields form-encoded, sorted by key.
func (f Fields) Encode() string {
	return f.Values().Encode()
}
