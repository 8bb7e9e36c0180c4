package httpserver

import (
	"net/http"
	"time"

	cartsvc "beerhall/internal/service/cart"
	catalogsvc "beerhall/internal/service/catalog"
	checkoutsvc "beerhall/internal/service/checkout"

	"github.com/gin-gonic/gin"
)

const deliveryDateLayout = "2006-01-02"

// checkoutFormHandler returns what the shipping form needs: the cart being
// checked out and the selectable locations. An empty cart cannot reach the
// form.
func checkoutFormHandler(carts *cartsvc.Service, catalog *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := carts.View(c.Request.Context(), sessionID(c))
		if err != nil {
			respondDomainError(c, err)
			return
		}
		if cart.NumberOfItems() == 0 {
			respondError(c, http.StatusConflict, "cart is empty")
			return
		}
		locations, err := catalog.ListLocations(c.Request.Context())
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"cart":      toCartResponse(cart),
			"locations": locations,
		})
	}
}

type placeOrderRequest struct {
	Email        string `json:"email" binding:"required"`
	DeliveryDate string `json:"deliveryDate"`
	Giftwrapping bool   `json:"giftwrapping"`
	Street       string `json:"street"`
	PostalCode   string `json:"postalCode"`
}

type placeOrderResponse struct {
	OrderID      int64  `json:"orderId"`
	OrderDate    string `json:"orderDate"`
	DeliveryDate string `json:"deliveryDate,omitempty"`
	Giftwrapping bool   `json:"giftwrapping"`
	Street       string `json:"street"`
	PostalCode   string `json:"postalCode"`
	Total        string `json:"total"`
}

func placeOrderHandler(svc *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req placeOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		var deliveryDate *time.Time
		if req.DeliveryDate != "" {
			d, err := time.ParseInLocation(deliveryDateLayout, req.DeliveryDate, time.Local)
			if err != nil {
				respondError(c, http.StatusBadRequest, "deliveryDate must be formatted as YYYY-MM-DD")
				return
			}
			deliveryDate = &d
		}

		res, err := svc.PlaceOrder(c.Request.Context(), sessionID(c), checkoutsvc.Input{
			Email:        req.Email,
			DeliveryDate: deliveryDate,
			Giftwrapping: req.Giftwrapping,
			Street:       req.Street,
			PostalCode:   req.PostalCode,
		})
		if err != nil {
			respondDomainError(c, err)
			return
		}

		resp := placeOrderResponse{
			OrderID:      res.OrderID,
			OrderDate:    res.Order.OrderDate().Format(deliveryDateLayout),
			Giftwrapping: res.Order.Giftwrapping(),
			Street:       res.Order.Street(),
			PostalCode:   res.Order.Location().PostalCode,
			Total:        res.Order.Total().String(),
		}
		if d := res.Order.DeliveryDate(); d != nil {
			resp.DeliveryDate = d.Format(deliveryDateLayout)
		}
		c.JSON(http.StatusCreated, resp)
	}
}
