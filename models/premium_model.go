package models

// PremiumRequest is the inbound quote payload.
type PremiumRequest struct {
	Code        string `json:"code" binding:"required"`
	SumInsured  string `json:"sumInsured" binding:"required"`
	DateOfBirth string `json:"dateOfBirth" binding:"required,datetime=2006-01-02"`
}
