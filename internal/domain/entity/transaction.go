package entity

import "time"

// BankTransaction is one synthesized bank statement line.
// Amount is signed: negative for payables, positive for receivables.
type BankTransaction struct {
	Date         time.Time `json:"date"`
	Counterparty string    `json:"counterparty"`
	Description  string    `json:"description"`
	Amount       float64   `json:"amount"`
}
