package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded, PaymentCancelled:
		return true
	}
	return false
}

type PaymentType string

const (
	PaymentRent            PaymentType = "RENT"
	PaymentSecurityDeposit PaymentType = "SECURITY_DEPOSIT"
	PaymentLateFee         PaymentType = "LATE_FEE"
	PaymentUtility         PaymentType = "UTILITY"
	PaymentOther           PaymentType = "OTHER"
)

func (t PaymentType) Valid() bool {
	switch t {
	case PaymentRent, PaymentSecurityDeposit, PaymentLateFee, PaymentUtility, PaymentOther:
		return true
	}
	return false
}

// Payment is money owed or paid against a lease.
type Payment struct {
	ID            string
	LeaseID       string
	PayerID       string
	Amount        float64
	Type          PaymentType
	Status        PaymentStatus
	DueDate       time.Time
	PaidDate      *time.Time
	PaymentMethod string
	TransactionID string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Populated by reads.
	Lease *LeaseSummary
	Payer *UserSummary
}
