package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"avion/internal/infrastructure/firebase"
)

type HealthHandler struct {
	firebaseAuth *firebase.FirebaseAuthClient
	redisClient  *redis.Client
}

var healthHandler *HealthHandler

func NewHealthHandler(firebaseAuth *firebase.FirebaseAuthClient, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		firebaseAuth: firebaseAuth,
		redisClient:  redisClient,
	}
}

func SetupHealthHandler(firebaseAuth *firebase.FirebaseAuthClient, redisClient *redis.Client) {
	healthHandler = NewHealthHandler(firebaseAuth, redisClient)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (h *HealthHandler) CheckFirebaseHealth(c echo.Context) error {
	err := h.firebaseAuth.TestConnection(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"status": "Firebase Auth connection failed",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "Firebase Auth connected successfully",
	})
}

func (h *HealthHandler) CheckRedisHealth(c echo.Context) error {
	if err := h.redisClient.Ping(c.Request().Context()).Err(); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"status": "Redis connection failed",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "Redis connected successfully",
	})
}
