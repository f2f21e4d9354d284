// Package models holds client-side data models for the banking service.
package models

import "fmt"

// Account is one account as returned by the banking service.
type Account struct {
	Number  int     `json:"accountNumber"`
	Type    string  `json:"accountType"`
	Balance float64 `json:"balance"`
}

func (a Account) String() string {
	return fmt.Sprintf("%s #%d: %.2f", a.Type, a.Number, a.Balance)
}
