// controllers/catalog.go
package controllers

import (
	"net/http"

	"bizhub-backend/catalog"
	"bizhub-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetCategories lists the service categories on offer.
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories()})
}

// GetCatalog returns the static offering for one category.
func GetCatalog(c *gin.Context) {
	category := c.Param("category")

	entries, ok := catalog.Entries(category)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Unknown service category")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"services": entries,
	})
}
