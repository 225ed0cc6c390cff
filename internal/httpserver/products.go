package httpserver

import (
	"errors"
	"net/http"

	"qkart/internal/domain"
	"github.com/gin-gonic/gin"
)

func (h *handlers) listProducts(c *gin.Context) {
	products, err := h.deps.CatalogSvc.List(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (h *handlers) searchProducts(c *gin.Context) {
	products, err := h.deps.CatalogSvc.Search(c.Request.Context(), c.Query("value"))
	if err != nil {
		h.serverError(c, err)
		return
	}
	// An empty result set answers 404 with an empty list body.
	if len(products) == 0 {
		c.JSON(http.StatusNotFound, []domain.Product{})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *handlers) getProduct(c *gin.Context) {
	p, err := h.deps.CatalogSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
