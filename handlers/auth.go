// auth.go - Handles user registration, login, logout and the current user

package handlers

import (
	"net/http"
	"time"

	"product-catalog/config"
	"product-catalog/database"
	"product-catalog/models"
	"product-catalog/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name                 string `json:"name" binding:"required,max=255"`
	Email                string `json:"email" binding:"required,email,max=255"`
	Password             string `json:"password" binding:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// issueToken creates a new access token row for the user and signs the JWT
// that references it. Each call issues an independent session; tokens from
// earlier logins stay valid.
func issueToken(user *models.User) (string, error) {
	access := models.AccessToken{UserID: user.ID, Name: "auth-token"}
	if err := database.DB.Create(&access).Error; err != nil {
		return "", err
	}

	cfg := config.Load()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"token_id": access.ID,
		"exp":      time.Now().Add(time.Hour * 72).Unix(),
	})
	return token.SignedString([]byte(cfg.JWTSecret))
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, "The given data was invalid.", ValidationErrors(err), http.StatusUnprocessableEntity)
		return
	}

	// Uniqueness is checked here for the field-keyed message; the unique
	// index catches the race between concurrent registrations.
	var count int64
	if err := database.DB.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		response.Error(c, "Failed to register user", err.Error(), http.StatusInternalServerError)
		return
	}
	if count > 0 {
		response.Error(c, "The given data was invalid.", map[string][]string{
			"email": {"The email has already been taken."},
		}, http.StatusUnprocessableEntity)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		response.Error(c, "Failed to register user", err.Error(), http.StatusInternalServerError)
		return
	}

	user := models.User{Name: input.Name, Email: input.Email, Password: string(hash)}
	if err := database.DB.Create(&user).Error; err != nil {
		response.Error(c, "Failed to register user", err.Error(), http.StatusInternalServerError)
		return
	}

	token, err := issueToken(&user)
	if err != nil {
		response.Error(c, "Failed to register user", err.Error(), http.StatusInternalServerError)
		return
	}

	response.Success(c, gin.H{"user": user, "token": token}, "User registered successfully", http.StatusCreated)
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, "The given data was invalid.", ValidationErrors(err), http.StatusUnprocessableEntity)
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		response.Error(c, "Invalid credentials", nil, http.StatusUnauthorized)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.Error(c, "Invalid credentials", nil, http.StatusUnauthorized)
		return
	}

	token, err := issueToken(&user)
	if err != nil {
		response.Error(c, "Failed to login", err.Error(), http.StatusInternalServerError)
		return
	}

	response.Success(c, gin.H{"user": user, "token": token}, "Login successful", http.StatusOK)
}

// Logout revokes exactly the token used for this request. Other sessions of
// the same user keep working.
func Logout(c *gin.Context) {
	tokenID := c.GetUint("token_id")
	if err := database.DB.Delete(&models.AccessToken{}, tokenID).Error; err != nil {
		response.Error(c, "Failed to logout", err.Error(), http.StatusInternalServerError)
		return
	}
	response.Success(c, nil, "Logout successful", http.StatusOK)
}

func CurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		response.Error(c, "Failed to retrieve user", err.Error(), http.StatusInternalServerError)
		return
	}
	response.Success(c, user, "User retrieved successfully", http.StatusOK)
}
