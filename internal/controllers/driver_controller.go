package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	logrus "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"transit_admin/internal/config"
	"transit_admin/internal/models"
)

// --- Helper Structs for Request Bodies ---

// createDriverInput is the console's add-driver form payload.
type createDriverInput struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number"`
}

// updateDriverInput defines the fields a client can send to update a driver.
// User-level fields are updated on the associated User record.
type updateDriverInput struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
}

// DriverResponse flattens the Driver and its User for the console table.
type DriverResponse struct {
	DriverID    uint   `json:"driver_id"`
	UserID      uint   `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

func toDriverResponse(d models.Driver) DriverResponse {
	return DriverResponse{
		DriverID:    d.ID,
		UserID:      d.UserID,
		Name:        d.Name,
		Email:       d.User.Email,
		PhoneNumber: d.PhoneNumber,
	}
}

// ListDrivers returns all drivers with their user records as a bare array.
func ListDrivers(c *gin.Context) {
	var drivers []models.Driver
	if err := config.DB.Preload("User").Find(&drivers).Error; err != nil {
		logrus.WithError(err).Error("ListDrivers: database error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing drivers: " + err.Error()})
		return
	}

	responses := make([]DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		responses = append(responses, toDriverResponse(d))
	}
	c.JSON(http.StatusOK, responses)
}

// GetDriver fetches a single driver by ID.
func GetDriver(c *gin.Context) {
	dID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver ID format."})
		return
	}

	var driver models.Driver
	if err := config.DB.Preload("User").First(&driver, uint(dID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, toDriverResponse(driver))
}

// CreateDriver creates the backing User (role "driver") and the Driver
// profile in one transaction. The initial password is the email address;
// drivers are expected to change it on first login.
func CreateDriver(c *gin.Context) {
	var input createDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body format: " + err.Error()})
		return
	}

	name := input.FirstName + " " + input.LastName

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Email), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return
	}

	user := models.User{
		Name:     name,
		Email:    input.Email,
		Password: string(hashed),
		Phone:    input.PhoneNumber,
		Role:     "driver",
	}
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
			return
		}
		logrus.WithError(err).Error("CreateDriver: could not create user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user: " + err.Error()})
		return
	}

	driver := models.Driver{
		UserID:      user.ID,
		Name:        name,
		PhoneNumber: input.PhoneNumber,
	}
	if err := tx.Create(&driver).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create driver: " + err.Error()})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction: " + err.Error()})
		return
	}

	driver.User = user
	c.JSON(http.StatusCreated, toDriverResponse(driver))
}

// UpdateDriver allows modifying driver details (both user-level and
// driver-specific).
func UpdateDriver(c *gin.Context) {
	dID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver ID format."})
		return
	}

	var driver models.Driver
	if err := config.DB.Preload("User").First(&driver, uint(dID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		}
		return
	}

	var input updateDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body format: " + err.Error()})
		return
	}

	if input.FirstName != nil || input.LastName != nil {
		first, last := splitName(driver.Name)
		if input.FirstName != nil {
			first = *input.FirstName
		}
		if input.LastName != nil {
			last = *input.LastName
		}
		driver.Name = first + " " + last
		driver.User.Name = driver.Name
	}
	if input.Email != nil {
		driver.User.Email = *input.Email
	}
	if input.PhoneNumber != nil {
		driver.PhoneNumber = *input.PhoneNumber
		driver.User.Phone = *input.PhoneNumber
	}

	tx := config.DB.Begin()
	if err := tx.Save(&driver.User).Error; err != nil {
		tx.Rollback()
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user: " + err.Error()})
		return
	}
	if err := tx.Save(&driver).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update driver: " + err.Error()})
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, toDriverResponse(driver))
}

// DeleteDriver removes a driver profile and its backing user.
func DeleteDriver(c *gin.Context) {
	dID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver ID format."})
		return
	}

	var driver models.Driver
	if err := config.DB.First(&driver, uint(dID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		}
		return
	}

	tx := config.DB.Begin()
	if err := tx.Delete(&driver).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete driver: " + err.Error()})
		return
	}
	if driver.UserID != 0 {
		if err := tx.Delete(&models.User{}, driver.UserID).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user: " + err.Error()})
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed: " + err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// splitName breaks a stored full name back into first/last for partial
// updates. Names without a space go entirely into the first part.
func splitName(full string) (string, string) {
	for i := len(full) - 1; i >= 0; i-- {
		if full[i] == ' ' {
			return full[:i], full[i+1:]
		}
	}
	return full, ""
}
