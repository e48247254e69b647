package handler

import (
	"errors"
	"net/http"
	"time"

	"complainthub/backend/internal/complaint"
	"complainthub/backend/internal/models"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionCookie  = "complainthub_session"
	sessionTTL     = 72 * time.Hour
	contextUserKey = "currentUser"
)

// generateJWT генерує сесійний JWT для користувача.
func (h *Handler) generateJWT(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(sessionTTL).Unix(),
		"iss":     "complainthub-service",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.Cfg.JWTSecret))
}

func (h *Handler) parseJWT(raw string) (uint, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(h.Cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid session claims")
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errors.New("invalid session claims")
	}
	return uint(userID), nil
}

// LoadIdentity розпізнає користувача із сесійної cookie, якщо вона є.
// Ніколи не перериває запит: гостьові маршрути теж проходять тут.
func (h *Handler) LoadIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(sessionCookie)
		if err != nil || raw == "" {
			c.Next()
			return
		}
		userID, err := h.parseJWT(raw)
		if err != nil {
			c.Next()
			return
		}
		user, err := h.Storage.GetUserByID(userID)
		if err == nil && user != nil {
			c.Set(contextUserKey, user)
		}
		c.Next()
	}
}

// AuthRequired пропускає лише автентифікованих користувачів.
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required."})
			return
		}
		c.Next()
	}
}

// AdminRequired пропускає лише адмінів.
func (h *Handler) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required."})
			return
		}
		if !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required."})
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

// identity будує request-scoped ідентичність для викликів сервісу.
func (h *Handler) identity(c *gin.Context) complaint.Identity {
	user := currentUser(c)
	if user == nil {
		return complaint.Guest
	}
	return complaint.Identity{UserID: &user.ID, IsAdmin: user.IsAdmin}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register створює акаунт і одразу відкриває сесію.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "details": err.Error()})
		return
	}

	existing, err := h.Storage.GetUserByEmail(req.Email)
	if err != nil {
		respondError(c, err, "")
		return
	}
	if existing != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": gin.H{"email": "email is already registered"}})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, err, "")
		return
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Title:        "Newcomer",
	}
	if err := h.Storage.CreateUser(user); err != nil {
		respondError(c, err, "")
		return
	}

	if err := h.openSession(c, user.ID); err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login перевіряє облікові дані й відкриває сесію.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "details": err.Error()})
		return
	}

	user, err := h.Storage.GetUserByEmail(req.Email)
	if err != nil {
		respondError(c, err, "")
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
		return
	}

	if err := h.openSession(c, user.ID); err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout закриває сесію.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out."})
}

func (h *Handler) openSession(c *gin.Context, userID uint) error {
	token, err := h.generateJWT(userID)
	if err != nil {
		return err
	}
	c.SetCookie(sessionCookie, token, int(sessionTTL.Seconds()), "/", "", false, true)
	return nil
}
