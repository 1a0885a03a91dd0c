package visitor

import "time"

// VisitorRecord is one persisted registration. It is written once and never updated.
type VisitorRecord struct {
	ID            string    `json:"id"`
	VisitorName   string    `json:"visitorName"`
	NoOfPersons   int       `json:"noOfPersons"`
	Purpose       string    `json:"purpose"`
	ContactNumber string    `json:"contactNumber"`
	VisitDate     string    `json:"visitDate"`
	CreatedAt     time.Time `json:"createdAt"`
}
