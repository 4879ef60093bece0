package models

import "time"

type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "pending"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoicePending, InvoicePaid, InvoiceOverdue, InvoiceCancelled:
		return true
	}
	return false
}

type Invoice struct {
	ID               string            `json:"id"`
	BookingID        string            `json:"bookingId"`
	UserID           string            `json:"userId"`
	ChefID           string            `json:"chefId"`
	InvoiceNumber    string            `json:"invoiceNumber"`
	IssueDate        time.Time         `json:"issueDate"`
	DueDate          time.Time         `json:"dueDate"`
	Subtotal         float64           `json:"subtotal"`
	Tax              float64           `json:"tax"`
	Total            float64           `json:"total"`
	Status           InvoiceStatus     `json:"status"`
	CorporateDetails *CorporateDetails `json:"corporateDetails,omitempty"`
}

// CorporateDetails is attached to invoices billed to a company account.
type CorporateDetails struct {
	CompanyName    string `json:"companyName"`
	TaxID          string `json:"taxId"`
	BillingAddress string `json:"billingAddress"`
	ContactPerson  string `json:"contactPerson"`
	Department     string `json:"department"`
}
