package domain

import "time"

// ClaimStatus represents the lifecycle state of a claim.
type ClaimStatus string

const (
	ClaimSubmitted ClaimStatus = "submitted"
	ClaimVerified  ClaimStatus = "verified"
	ClaimRejected  ClaimStatus = "rejected"
)

// Claim is a request for payout against one of a customer's policies.
type Claim struct {
	ID            string      `json:"claim_id" bson:"_id"`
	PolicyID      string      `json:"policy_id" bson:"policy_id"`
	CustomerEmail string      `json:"customer_email" bson:"customer_email"`
	Amount        float64     `json:"amount" bson:"amount"`
	Description   string      `json:"description" bson:"description"`
	Status        ClaimStatus `json:"status" bson:"status"`
	ReviewedBy    string      `json:"reviewed_by,omitempty" bson:"reviewed_by,omitempty"`
	CreatedAt     time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" bson:"updated_at"`
}

// Review moves a submitted claim to its final status.
func (c *Claim) Review(status ClaimStatus, reviewer string, at time.Time) error {
	if c.Status != ClaimSubmitted || (status != ClaimVerified && status != ClaimRejected) {
		return ErrInvalidTransition
	}
	c.Status = status
	c.ReviewedBy = reviewer
	c.UpdatedAt = at
	return nil
}
