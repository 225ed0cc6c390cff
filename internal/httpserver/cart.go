package httpserver

import (
	"errors"
	"net/http"

	cartsvc "qkart/internal/service/cart"
	checkoutsvc "qkart/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

type cartUpdateRequest struct {
	ProductID string `json:"productId"`
	Qty       *int   `json:"qty"`
}

type checkoutRequest struct {
	AddressID string `json:"addressId"`
}

func (h *handlers) getCart(c *gin.Context) {
	u := currentUser(c)
	c.JSON(http.StatusOK, h.deps.CartSvc.Get(c.Request.Context(), u))
}

func (h *handlers) updateCart(c *gin.Context) {
	var req cartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" || req.Qty == nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	u := currentUser(c)
	lines, err := h.deps.CartSvc.Set(c.Request.Context(), u, req.ProductID, *req.Qty)
	if err != nil {
		if failValidation(c, err) {
			return
		}
		if errors.Is(err, cartsvc.ErrUnknownProduct) {
			fail(c, http.StatusNotFound, "Product doesn't exist")
			return
		}
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, lines)
}

func (h *handlers) checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	u := currentUser(c)
	err := h.deps.CheckoutSvc.Submit(c.Request.Context(), u, req.AddressID)
	if err != nil {
		switch {
		case errors.Is(err, checkoutsvc.ErrEmptyCart):
			fail(c, http.StatusBadRequest, "Cart is empty")
		case errors.Is(err, checkoutsvc.ErrInsufficientBalance):
			fail(c, http.StatusBadRequest, "Wallet balance not sufficient to place order")
		case errors.Is(err, checkoutsvc.ErrNoAddress):
			fail(c, http.StatusBadRequest, "Address not set")
		case errors.Is(err, checkoutsvc.ErrBadAddress):
			fail(c, http.StatusNotFound, "Bad address specified")
		default:
			h.serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
