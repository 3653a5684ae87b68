package model

const (
	StatusPaid    = "paid"
	StatusPending = "pending"
	StatusFailed  = "failed"
)

// Order is one persisted row of a completed checkout session. The store
// keeps one row per cart item, not one per session; rows from the same
// session share a PaymentID.
type Order struct {
	ID    string
	Name  string
	Email string
	// Style is stored under the record store's legacy "Sex" column.
	Style     string
	Size      string
	Amount    float64 // major currency units
	Status    string
	Date      string
	PaymentID string
}

// Subscriber is one newsletter signup row.
type Subscriber struct {
	Email  string
	Source string
}
