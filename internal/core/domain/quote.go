package domain

import "time"

// QuoteStatus tracks a quote request through the sales workflow.
type QuoteStatus string

const (
	QuoteStatusNew       QuoteStatus = "new"
	QuoteStatusContacted QuoteStatus = "contacted"
	QuoteStatusClosed    QuoteStatus = "closed"
)

// Valid reports whether s is a known quote status.
func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusNew, QuoteStatusContacted, QuoteStatusClosed:
		return true
	}
	return false
}

// Quote is a customer request for pricing, submitted from the public
// catalog without authentication. AssignedTo references a staff user.
type Quote struct {
	ID             string      `json:"id" bson:"_id,omitempty"`
	CustomerName   string      `json:"customer_name" bson:"customer_name"`
	CustomerEmail  string      `json:"customer_email" bson:"customer_email"`
	CustomerPhone  string      `json:"customer_phone,omitempty" bson:"customer_phone,omitempty"`
	CompanyName    string      `json:"company_name,omitempty" bson:"company_name,omitempty"`
	ProductID      string      `json:"product_id,omitempty" bson:"product_id,omitempty"`
	ProductName    string      `json:"product_name,omitempty" bson:"product_name,omitempty"`
	Message        string      `json:"message" bson:"message"`
	Status         QuoteStatus `json:"status" bson:"status"`
	AssignedTo     string      `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	AssignedToName string      `json:"assigned_to_name,omitempty" bson:"assigned_to_name,omitempty"`
	CreatedAt      time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at" bson:"updated_at"`
}
