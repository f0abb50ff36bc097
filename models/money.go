package models

import (
	"encoding/json"
	"fmt"
)

// Money kinds as stored in the JSON documents.
const (
	MoneyValue     = "value"
	MoneyOnRequest = "on_request"
)

// Money is either a fixed EUR amount or "price on request".
// Wire format: {"type":"value","eur":1200} or {"type":"on_request"}.
type Money struct {
	Type string
	EUR  float64
}

// FixedMoney returns a Money carrying a fixed EUR amount.
func FixedMoney(eur float64) Money {
	return Money{Type: MoneyValue, EUR: eur}
}

// OnRequestMoney returns the "price on request" value.
func OnRequestMoney() Money {
	return Money{Type: MoneyOnRequest}
}

// OnRequest reports whether the price is only available on request.
func (m Money) OnRequest() bool {
	return m.Type == MoneyOnRequest
}

// Value returns the fixed amount, or 0 for "on request". The zero keeps
// on-request items out of every sum while the kind stays distinguishable.
func (m Money) Value() float64 {
	if m.Type == MoneyValue {
		return m.EUR
	}
	return 0
}

func (m Money) MarshalJSON() ([]byte, error) {
	if m.Type == MoneyOnRequest {
		return json.Marshal(struct {
			Type string `json:"type"`
		}{Type: MoneyOnRequest})
	}
	return json.Marshal(struct {
		Type string  `json:"type"`
		EUR  float64 `json:"eur"`
	}{Type: MoneyValue, EUR: m.EUR})
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var aux struct {
		Type string  `json:"type"`
		EUR  float64 `json:"eur"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	switch aux.Type {
	case MoneyValue:
		if aux.EUR < 0 {
			return fmt.Errorf("money: negative amount %v", aux.EUR)
		}
		*m = Money{Type: MoneyValue, EUR: aux.EUR}
	case MoneyOnRequest:
		*m = Money{Type: MoneyOnRequest}
	default:
		return fmt.Errorf("money: unknown type %q", aux.Type)
	}
	return nil
}
