package entity

// Company represents one party on a synthesized invoice: either the
// generator's own company or a counterparty.
type Company struct {
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email"`
	Website        string   `json:"website"`
	BankName       string   `json:"bank_name"`
	IBAN           string   `json:"iban"`
	VATID          string   `json:"vat_id"`
	NameVariations []string `json:"name_variations"`
}
