package httpserver

import (
	"context"
	"net/http"
	"strings"

	custrepo "beerhall/internal/repository/customer"
	orderrepo "beerhall/internal/repository/order"

	"beerhall/internal/domain"

	"github.com/gin-gonic/gin"
)

type customerDirectory interface {
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	Create(ctx context.Context, in custrepo.CreateCustomerInput) (*domain.Customer, error)
}

type orderDirectory interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]orderrepo.PlacedOrder, error)
}

type registerCustomerRequest struct {
	Email      string `json:"email" binding:"required"`
	Name       string `json:"name" binding:"required"`
	FirstName  string `json:"firstName" binding:"required"`
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
}

func registerCustomerHandler(customers customerDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "email, name and firstName are required")
			return
		}

		in := custrepo.CreateCustomerInput{
			Email:     strings.TrimSpace(strings.ToLower(req.Email)),
			Name:      strings.TrimSpace(req.Name),
			FirstName: strings.TrimSpace(req.FirstName),
			Street:    strings.TrimSpace(req.Street),
		}
		if code := strings.TrimSpace(req.PostalCode); code != "" {
			in.PostalCode = &code
		}

		customer, err := customers.Create(c.Request.Context(), in)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusCreated, customer)
	}
}

func listOrdersHandler(customers customerDirectory, orders orderDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(strings.ToLower(c.Param("email")))
		customer, err := customers.GetByEmail(c.Request.Context(), email)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		placed, err := orders.ListByCustomer(c.Request.Context(), customer.ID)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": placed})
	}
}
