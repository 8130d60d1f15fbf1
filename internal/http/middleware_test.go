package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"wayfinder/internal/auth"
)

func newGateRouter(t *testing.T) (*gin.Engine, *auth.TokenService) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	tokens, err := auth.NewTokenService("sign-secret", "enc-secret", "wayfinder-api", "wayfinder-client", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}

	router := gin.New()
	router.GET("/protected", AuthRequired(tokens), func(c *gin.Context) {
		id, ok := currentUserID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return router, tokens
}

func doGet(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRequired_MissingHeader(t *testing.T) {
	router, _ := newGateRouter(t)

	w := doGet(router, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Authorization header is required") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAuthRequired_WrongScheme(t *testing.T) {
	router, _ := newGateRouter(t)

	for _, header := range []string{"Basic abc", "Bearer", "Bearer   "} {
		w := doGet(router, header)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%q status: got %d want 401", header, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Bearer token is required") {
			t.Fatalf("%q unexpected body: %s", header, w.Body.String())
		}
	}
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	router, _ := newGateRouter(t)

	w := doGet(router, "Bearer not-a-token")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid or expired token") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAuthRequired_ValidToken(t *testing.T) {
	router, tokens := newGateRouter(t)

	token, err := tokens.Issue(42, "a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// The scheme is matched case-insensitively.
	for _, scheme := range []string{"Bearer", "bearer", "BEARER"} {
		w := doGet(router, scheme+" "+token)
		if w.Code != http.StatusOK {
			t.Fatalf("%s status: got %d want 200, body %s", scheme, w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"user_id":42`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	}
}

func TestRateLimit_ExhaustsBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/login", RateLimit(1, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Fatalf("expected first two requests to pass, got %v", statuses)
	}
	if statuses[2] != http.StatusTooManyRequests {
		t.Fatalf("expected third request to be limited, got %v", statuses)
	}
}
