package queries

import (
	"errors"
	"strings"

	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrGetOrdersByCustomerQueryIsNotConstructed = errors.New(
	"GetOrdersByCustomerQuery must be created via NewGetOrdersByCustomerQuery constructor",
)

// GetOrdersByCustomerQuery retrieves a customer's order history, identified
// by the customer's email address.
type GetOrdersByCustomerQuery struct {
	customerEmail string

	guard guard.ConstructorGuard
}

// NewGetOrdersByCustomerQuery creates a query for a customer's orders.
func NewGetOrdersByCustomerQuery(customerEmail string) (GetOrdersByCustomerQuery, error) {
	if strings.TrimSpace(customerEmail) == "" {
		return GetOrdersByCustomerQuery{}, errs.NewValueIsRequiredError("customerEmail")
	}

	return GetOrdersByCustomerQuery{
		customerEmail: customerEmail,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerQueryIsNotConstructed)
}

// CustomerEmail returns the email identifying the customer.
func (q GetOrdersByCustomerQuery) CustomerEmail() string {
	return q.customerEmail
}
