package dto

// ReserveRequest defines the data needed to move funds between an account's
// free and reserved balances.
type ReserveRequest struct {
	CurrencyID string `json:"currencyID" binding:"required,uppercase,min=3,max=8"`
	Amount     uint64 `json:"amount" binding:"required,gt=0"`
}

// BalanceResponse defines the data returned for an account balance query.
type BalanceResponse struct {
	AccountID  string `json:"accountID"`
	CurrencyID string `json:"currencyID"`
	Free       uint64 `json:"free"`
	Reserved   uint64 `json:"reserved"`
}
