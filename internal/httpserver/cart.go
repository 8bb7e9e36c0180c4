package httpserver

import (
	"net/http"
	"strconv"

	"beerhall/internal/domain"
	cartsvc "beerhall/internal/service/cart"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type cartLineResponse struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Subtotal  string `json:"subtotal"`
}

type cartResponse struct {
	Lines         []cartLineResponse `json:"lines"`
	NumberOfItems int                `json:"numberOfItems"`
	Total         string             `json:"total"`
}

func toCartResponse(cart *domain.Cart) cartResponse {
	return cartResponse{
		Lines: lo.Map(cart.Lines(), func(l domain.CartLine, _ int) cartLineResponse {
			return cartLineResponse{
				ProductID: l.Product.ID,
				Name:      l.Product.Name,
				Quantity:  l.Quantity,
				UnitPrice: l.Product.Price.String(),
				Subtotal:  l.Subtotal().String(),
			}
		}),
		NumberOfItems: cart.NumberOfItems(),
		Total:         cart.TotalValue().String(),
	}
}

func getCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.View(c.Request.Context(), sessionID(c))
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

type addLineRequest struct {
	BeerID   int `json:"beerId" binding:"required"`
	Quantity int `json:"quantity"`
}

func addCartLineHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addLineRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		cart, err := svc.Add(c.Request.Context(), sessionID(c), req.BeerID, req.Quantity)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

func removeCartLineHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		beerID, err := strconv.Atoi(c.Param("beerID"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid beer id")
			return
		}
		cart, err := svc.Remove(c.Request.Context(), sessionID(c), beerID)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

func clearCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.Request.Context(), sessionID(c)); err != nil {
			respondDomainError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
