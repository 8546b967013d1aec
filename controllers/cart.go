// controllers/cart.go
package controllers

import (
	"errors"
	"net/http"

	"bizhub-backend/cart"
	"bizhub-backend/catalog"
	"bizhub-backend/config"
	"bizhub-backend/storage"
	"bizhub-backend/utils"

	"github.com/gin-gonic/gin"
)

func cartManager() *cart.Manager {
	return cart.NewManager(storage.NewGormStore(config.DB))
}

// loadCart resolves the caller, category and current cart. Writes the
// error response itself and returns ok=false on failure.
func loadCart(c *gin.Context) (owner string, category string, crt *cart.Cart, ok bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return "", "", nil, false
	}

	category = c.Param("category")
	crt, err := cartManager().Load(c.Request.Context(), userID.(string), category)
	if err != nil {
		if errors.Is(err, cart.ErrUnknownCategory) {
			utils.RespondWithError(c, http.StatusNotFound, "Unknown service category")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load cart")
		}
		return "", "", nil, false
	}

	return userID.(string), category, crt, true
}

func respondWithCart(c *gin.Context, crt *cart.Cart) {
	c.JSON(http.StatusOK, gin.H{
		"items": crt.Items,
		"total": crt.Total(),
	})
}

// GetCart returns the caller's cart for one category.
func GetCart(c *gin.Context) {
	_, _, crt, ok := loadCart(c)
	if !ok {
		return
	}
	respondWithCart(c, crt)
}

type ToggleInput struct {
	ServiceID string `json:"serviceId" binding:"required"`
}

// ToggleSelection flips a catalog entry in or out of the cart.
func ToggleSelection(c *gin.Context) {
	owner, category, crt, ok := loadCart(c)
	if !ok {
		return
	}

	var input ToggleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	entry, found := catalog.Find(category, input.ServiceID)
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found in catalog")
		return
	}

	selected := crt.Toggle(entry)
	if err := cartManager().Save(c.Request.Context(), owner, category, crt); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"selected": selected,
		"items":    crt.Items,
		"total":    crt.Total(),
	})
}

type UpdateQuantityInput struct {
	ServiceID string `json:"serviceId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateQuantity sets an item's quantity. Quantities below 1 are
// silently ignored, mirroring the selection UI.
func UpdateQuantity(c *gin.Context) {
	owner, category, crt, ok := loadCart(c)
	if !ok {
		return
	}

	var input UpdateQuantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	crt.UpdateQuantity(input.ServiceID, input.Quantity)
	if err := cartManager().Save(c.Request.Context(), owner, category, crt); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save cart")
		return
	}

	respondWithCart(c, crt)
}

type UpdateCustomPriceInput struct {
	ServiceID string  `json:"serviceId" binding:"required"`
	Price     float64 `json:"price"`
}

// UpdateCustomPrice sets the price override of a variable-price item;
// the engine clamps it to the item's minimum.
func UpdateCustomPrice(c *gin.Context) {
	owner, category, crt, ok := loadCart(c)
	if !ok {
		return
	}

	var input UpdateCustomPriceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	crt.UpdateCustomPrice(input.ServiceID, input.Price)
	if err := cartManager().Save(c.Request.Context(), owner, category, crt); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save cart")
		return
	}

	respondWithCart(c, crt)
}

// RemoveCartItem removes one item from the cart.
func RemoveCartItem(c *gin.Context) {
	owner, category, crt, ok := loadCart(c)
	if !ok {
		return
	}

	crt.Remove(c.Param("serviceId"))
	if err := cartManager().Save(c.Request.Context(), owner, category, crt); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save cart")
		return
	}

	respondWithCart(c, crt)
}

// ClearCart empties the cart and erases its persisted record, so a
// later page load starts empty.
func ClearCart(c *gin.Context) {
	owner, category, crt, ok := loadCart(c)
	if !ok {
		return
	}

	if err := cartManager().ClearAll(c.Request.Context(), owner, category, crt); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

// FinalizeCart flattens the cart into the shared pending-request slot
// for the request form to consume.
func FinalizeCart(c *gin.Context) {
	owner, category, crt, ok := loadCart(c)
	if !ok {
		return
	}

	pending, err := cartManager().FinalizeSelection(c.Request.Context(), owner, category, crt)
	if err != nil {
		if errors.Is(err, cart.ErrEmptySelection) {
			utils.RespondWithError(c, http.StatusBadRequest, "Please select at least one service")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to finalize selection")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Selection finalized",
		"pending": pending,
	})
}
