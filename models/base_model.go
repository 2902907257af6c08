package models

import "github.com/healthsure/premium-api/utils"

// PremiumResponse is the quote wire shape expected by downstream
// consumers: a bare premium amount, transmitted as a string.
type PremiumResponse struct {
	Premium string `json:"premium"`
}

// ErrorResponse carries a stable service error code alongside a
// human-readable message.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

type MatrixStatusResponse struct {
	Loaded  bool   `json:"loaded"`
	Version string `json:"version"`
}

func NewError(code string, msg string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: msg,
	}
}

func NewStatus(msg string) *StatusResponse {
	return &StatusResponse{
		Status:  "success",
		Message: msg,
		Version: utils.REVISION,
	}
}
