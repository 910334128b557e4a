package restaurant

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupRestaurantRouter(repo Repository, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.Use(func(c *gin.Context) {
		c.Set("userID", userID)
	})

	handler := NewHandler(NewService(repo))
	r.POST("/restaurants", handler.CreateRestaurant)
	r.GET("/restaurants/me", handler.ListMyRestaurants)

	return r
}

func TestCreateRestaurant(t *testing.T) {
	repo := NewInMemoryRepository()
	router := setupRestaurantRouter(repo, "owner-1")

	body, _ := json.Marshal(map[string]string{
		"name":         "Bella Roma",
		"city":         "Pune",
		"cuisine_type": "Italian",
	})

	req := httptest.NewRequest(http.MethodPost, "/restaurants", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateRestaurant_MissingFields(t *testing.T) {
	repo := NewInMemoryRepository()
	router := setupRestaurantRouter(repo, "owner-1")

	body, _ := json.Marshal(map[string]string{"name": "No City"})

	req := httptest.NewRequest(http.MethodPost, "/restaurants", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetOwned_RejectsForeignRestaurant(t *testing.T) {
	repo := NewInMemoryRepository()
	svc := NewService(repo)

	rest, err := svc.CreateRestaurant(context.Background(), "Bella Roma", "Pune", "Italian", "", "owner-1")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.GetOwned(context.Background(), rest.ID, "owner-2"); err != ErrNotOwner {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	if _, err := svc.GetOwned(context.Background(), rest.ID, "owner-1"); err != nil {
		t.Fatalf("owner must be able to read own restaurant: %v", err)
	}
}
