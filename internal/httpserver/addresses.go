package httpserver

import (
	"errors"
	"net/http"

	accountsvc "qkart/internal/service/account"
	"github.com/gin-gonic/gin"
)

type addAddressRequest struct {
	Address string `json:"address"`
}

func (h *handlers) listAddresses(c *gin.Context) {
	u := currentUser(c)
	c.JSON(http.StatusOK, h.deps.AccountSvc.Addresses(c.Request.Context(), u))
}

func (h *handlers) addAddress(c *gin.Context) {
	var req addAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	u := currentUser(c)
	addresses, err := h.deps.AccountSvc.Add(c.Request.Context(), u, req.Address)
	if err != nil {
		if failValidation(c, err) {
			return
		}
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, addresses)
}

func (h *handlers) deleteAddress(c *gin.Context) {
	u := currentUser(c)
	addresses, err := h.deps.AccountSvc.Delete(c.Request.Context(), u, c.Param("id"))
	if err != nil {
		if errors.Is(err, accountsvc.ErrAddressNotFound) {
			fail(c, http.StatusNotFound, "Address to delete was not found")
			return
		}
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, addresses)
}
