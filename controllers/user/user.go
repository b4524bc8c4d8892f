package userControllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/zahraaAed/Douluxme-Backend/auth"
	"github.com/zahraaAed/Douluxme-Backend/middleware"
	"github.com/zahraaAed/Douluxme-Backend/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

type RegisterRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required"`
	Name     string          `json:"name" binding:"required"`
	Role     models.Role     `json:"role"`
	Address  *models.Address `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Email    *string         `json:"email"`
	Password *string         `json:"password"`
	Name     *string         `json:"name"`
	Role     *models.Role    `json:"role"`
	Address  *models.Address `json:"address"`
}

// profileResponse is the projection returned by GET /me.
type profileResponse struct {
	ID      uint            `json:"id"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Role    models.Role     `json:"role"`
	Address *models.Address `json:"address"`
}

func setTokenCookie(c *gin.Context, token string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}

// POST /api/users/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		role := req.Role
		if role == "" {
			role = models.RoleCustomer
		}
		if role != models.RoleCustomer && role != models.RoleAdmin {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		var existing models.User
		err := db.Where("email = ?", email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("failed to check existing user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if err != nil {
			log.Printf("failed to hash password: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		newUser := models.User{
			Email:    email,
			Password: string(hashed),
			Name:     req.Name,
			Role:     role,
			Address:  req.Address,
		}
		if err := db.Create(&newUser).Error; err != nil {
			// Unique index on email backstops the check above.
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "userId": newUser.ID})
	}
}

// POST /api/users/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		// Missing user and wrong password answer identically so the
		// endpoint cannot be used to enumerate accounts.
		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}

		token, err := auth.GenerateToken(user.ID, user.Role)
		if err != nil {
			log.Printf("failed to generate token: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		setTokenCookie(c, token, int(auth.TokenLifetime.Seconds()))

		// The token is echoed in the body for clients that cannot use cookies.
		c.JSON(http.StatusOK, gin.H{
			"message": "Logged in successfully",
			"user":    gin.H{"id": user.ID, "role": user.Role},
			"token":   token,
		})
	}
}

// POST /api/users/logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		setTokenCookie(c, "", -1)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// GET /api/users/me
func Me(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": profileResponse{
			ID:      user.ID,
			Name:    user.Name,
			Email:   user.Email,
			Role:    user.Role,
			Address: user.Address,
		}})
	}
}

// GET /api/users/get
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("created_at desc").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// PATCH /api/users/update/:id
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var user models.User
		if err := db.First(&user, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		var req UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if req.Email != nil {
			email := strings.ToLower(strings.TrimSpace(*req.Email))
			var existing models.User
			err := db.Where("email = ? AND id <> ?", email, user.ID).First(&existing).Error
			if err == nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
				return
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("failed to check existing user: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
				return
			}
			user.Email = email
		}
		if req.Name != nil {
			user.Name = *req.Name
		}
		if req.Role != nil {
			if *req.Role != models.RoleCustomer && *req.Role != models.RoleAdmin {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
				return
			}
			user.Role = *req.Role
		}
		if req.Address != nil {
			user.Address = req.Address
		}
		if req.Password != nil && *req.Password != "" {
			hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
			if err != nil {
				log.Printf("failed to hash password: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
				return
			}
			user.Password = string(hashed)
		}

		if err := db.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "user": user})
	}
}

// DELETE /api/users/delete/:id
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var user models.User
		if err := db.First(&user, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		if err := db.Delete(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}
