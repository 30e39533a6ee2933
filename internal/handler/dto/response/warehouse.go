package response

import (
	"solar-dispatch/internal/usecase/commands"
	"solar-dispatch/internal/usecase/queries"
)

type CustomerListResponse struct {
	Customers []*queries.CustomerView `json:"customers"`
	Total     int                     `json:"total"`
	Notified
}

type CustomerResponse struct {
	Customer *queries.CustomerView `json:"customer"`
	Notified
}

type MaterialTransitionResponse struct {
	Customer *queries.CustomerView `json:"customer"`
	Line     string                `json:"line"`
	State    string                `json:"state"`
	Notified
}

func FromTransitionResult(r *commands.TransitionResult) *MaterialTransitionResponse {
	return &MaterialTransitionResponse{
		Customer: queries.ToCustomerView(r.Customer),
		Line:     string(r.Line),
		State:    string(r.State),
	}
}
