package models

// Salary is the singleton per-user salary record. It anchors the running
// cash-balance ledger: every month starts from the previous month's ending
// balance and adds the recurring salary amount.
type Salary struct {
	// Amount is the monthly recurring salary figure (non-negative).
	Amount float64 `json:"amount"`

	// ReceivedDate is the date the salary was last received (YYYY-MM-DD).
	ReceivedDate string `json:"receivedDate"`

	// PreviousBalance is a manually carried-forward starting balance,
	// used for ledger continuity across periods.
	PreviousBalance float64 `json:"previousBalance"`
}
