package model

import (
	"encoding/json"
	"fmt"
)

// Game is a purchasable title in the catalog. The catalog is declared once
// at startup and is immutable afterwards.
type Game struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Image       string         `json:"image"`
	Description string         `json:"description"`
	Packages    []TopUpPackage `json:"packages"`
}

// OtherGameID is the sentinel id of the catch-all catalog entry. Selecting it
// requires the buyer to type the game name by hand.
const OtherGameID = "other"

// TopUpPackage is a single credit offer inside a game card. Amount, bonus and
// price are display labels, never parsed quantities.
type TopUpPackage struct {
	ID       string `json:"id"`
	Amount   string `json:"amount"`
	Bonus    string `json:"bonus,omitempty"`
	Price    Price  `json:"price"`
	Currency string `json:"currency"`
}

// Price is opaque display text. The catalog may declare it as a JSON number
// or a pre-formatted string; it round-trips unchanged and is never used in
// arithmetic.
type Price struct {
	text   string
	number bool
}

func (p *Price) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		p.text, p.number = s, false
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("price must be a number or a string: %w", err)
	}
	p.text, p.number = n.String(), true
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	if p.number {
		return []byte(p.text), nil
	}
	return json.Marshal(p.text)
}

func (p Price) String() string { return p.text }

// SortKey selects the ordering of the catalog view. Unknown values are
// rejected rather than silently treated as the default.
type SortKey string

const (
	SortDefault  SortKey = "default"
	SortNameAsc  SortKey = "name-asc"
	SortNameDesc SortKey = "name-desc"
	SortPackages SortKey = "packages"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortDefault, SortNameAsc, SortNameDesc, SortPackages:
		return true
	}
	return false
}
