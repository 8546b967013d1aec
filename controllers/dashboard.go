// controllers/dashboard.go
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"bizhub-backend/config"
	"bizhub-backend/models"
	"bizhub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SeriesPoint struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

type ActivityEntry struct {
	Type        string    `json:"type"` // request or payment
	Reference   string    `json:"reference"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	When        string    `json:"when"` // e.g. "Today", "3 days ago"
	CreatedAt   time.Time `json:"createdAt"`
}

// GetDashboardStats returns the admin overview counters.
func GetDashboardStats(c *gin.Context) {
	var totalUsers int64
	config.DB.Model(&models.User{}).Where("deleted_at IS NULL").Count(&totalUsers)

	var totalRequests int64
	config.DB.Model(&models.ServiceRequest{}).Count(&totalRequests)

	var totalPayments int64
	config.DB.Model(&models.Payment{}).Where("status = ?", models.PaymentStatusCompleted).Count(&totalPayments)

	var totalRevenue float64
	config.DB.Model(&models.Payment{}).
		Where("status = ?", models.PaymentStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalRevenue)

	// This month's revenue
	now := time.Now()
	firstOfMonth := utils.BeginningOfMonth(now)
	var monthlyRevenue float64
	config.DB.Model(&models.Payment{}).
		Where("status = ? AND created_at >= ?", models.PaymentStatusCompleted, firstOfMonth).
		Select("COALESCE(SUM(amount), 0)").Scan(&monthlyRevenue)

	var pendingRequests int64
	config.DB.Model(&models.ServiceRequest{}).Where("status = ?", "pending").Count(&pendingRequests)

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":      totalUsers,
		"totalRequests":   totalRequests,
		"totalPayments":   totalPayments,
		"totalRevenue":    totalRevenue,
		"monthlyRevenue":  monthlyRevenue,
		"pendingRequests": pendingRequests,
	})
}

func relativeDay(t time.Time) string {
	daysAgo := utils.DaysBetween(t, time.Now())
	switch daysAgo {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", daysAgo)
	}
}

// GetRecentActivities interleaves the latest requests and payments.
func GetRecentActivities(c *gin.Context) {
	var activities []ActivityEntry

	var requests []models.ServiceRequest
	config.DB.Order("created_at DESC").Limit(10).Find(&requests)
	for _, r := range requests {
		activities = append(activities, ActivityEntry{
			Type:        "request",
			Reference:   r.ReferenceNumber,
			Description: r.CustomerName + " requested " + r.Category + " services",
			Amount:      r.TotalWithFees,
			When:        relativeDay(r.CreatedAt),
			CreatedAt:   r.CreatedAt,
		})
	}

	var payments []models.Payment
	config.DB.Where("status = ?", models.PaymentStatusCompleted).
		Order("created_at DESC").Limit(10).Find(&payments)
	for _, p := range payments {
		activities = append(activities, ActivityEntry{
			Type:        "payment",
			Reference:   p.Reference,
			Description: "Payment via " + p.PaymentMethod,
			Amount:      p.Amount,
			When:        relativeDay(p.CreatedAt),
			CreatedAt:   p.CreatedAt,
		})
	}

	// Newest first across both sources
	for i := 0; i < len(activities); i++ {
		for j := i + 1; j < len(activities); j++ {
			if activities[j].CreatedAt.After(activities[i].CreatedAt) {
				activities[i], activities[j] = activities[j], activities[i]
			}
		}
	}
	if len(activities) > 10 {
		activities = activities[:10]
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// GetRevenueSeries returns monthly completed-payment revenue for the
// last 12 months.
func GetRevenueSeries(c *gin.Context) {
	series := monthlySeries(func(start, end time.Time) float64 {
		var value float64
		config.DB.Model(&models.Payment{}).
			Where("status = ? AND created_at >= ? AND created_at < ?", models.PaymentStatusCompleted, start, end).
			Select("COALESCE(SUM(amount), 0)").Scan(&value)
		return value
	})
	c.JSON(http.StatusOK, gin.H{"series": series})
}

// GetUserGrowthSeries returns monthly new-user counts for the last 12
// months.
func GetUserGrowthSeries(c *gin.Context) {
	series := monthlySeries(func(start, end time.Time) float64 {
		var count int64
		config.DB.Model(&models.User{}).
			Where("created_at >= ? AND created_at < ?", start, end).
			Count(&count)
		return float64(count)
	})
	c.JSON(http.StatusOK, gin.H{"series": series})
}

func monthlySeries(bucket func(start, end time.Time) float64) []SeriesPoint {
	now := time.Now()
	series := make([]SeriesPoint, 0, 12)
	for i := 11; i >= 0; i-- {
		start := utils.BeginningOfMonth(now).AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)
		series = append(series, SeriesPoint{
			Month: start.Format("Jan 2006"),
			Value: bucket(start, end),
		})
	}
	return series
}

// GetUsers lists all users for the admin panel.
func GetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	list := make([]gin.H, 0, len(users))
	for _, u := range users {
		list = append(list, gin.H{
			"id":        u.ID,
			"name":      u.Name,
			"email":     u.Email,
			"phone":     u.Phone,
			"company":   u.Company,
			"role":      u.Role,
			"isActive":  u.IsActive,
			"lastLogin": u.LastLogin,
			"createdAt": u.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"users": list})
}

// AdminResetPassword sets a temporary password for a user and forwards
// it in the response for the admin to relay.
func AdminResetPassword(c *gin.Context) {
	userUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	temporary := utils.GenerateRandomString(10)
	hashed, err := utils.HashPassword(temporary)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	if err := config.DB.Model(&user).Update("password", hashed).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "Password reset",
		"temporaryPassword": temporary,
	})
}
