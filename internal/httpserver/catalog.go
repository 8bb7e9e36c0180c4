package httpserver

import (
	"net/http"
	"strconv"

	"beerhall/internal/domain"
	catalogsvc "beerhall/internal/service/catalog"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type beerResponse struct {
	ID             int    `json:"id"`
	BrewerID       int    `json:"brewerId"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Price          string `json:"price"`
	AlcoholPercent string `json:"alcoholPercent"`
}

func toBeerResponse(b domain.Beer) beerResponse {
	return beerResponse{
		ID:             b.ID,
		BrewerID:       b.BrewerID,
		Name:           b.Name,
		Description:    b.Description,
		Price:          b.Price.String(),
		AlcoholPercent: b.AlcoholPercent.String(),
	}
}

func listBeersHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		beers, err := svc.ListBeers(c.Request.Context())
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"beers": lo.Map(beers, func(b domain.Beer, _ int) beerResponse {
			return toBeerResponse(b)
		})})
	}
}

func getBeerHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid beer id")
			return
		}
		beer, err := svc.GetBeer(c.Request.Context(), id)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, toBeerResponse(*beer))
	}
}

func listBrewersHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		brewers, err := svc.ListBrewers(c.Request.Context())
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"brewers": brewers})
	}
}

func listLocationsHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		locations, err := svc.ListLocations(c.Request.Context())
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"locations": locations})
	}
}
