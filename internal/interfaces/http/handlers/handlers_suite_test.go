package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"referral-hub.backend/internal/infrastructure/repositories"
	"referral-hub.backend/internal/interfaces/http/handlers"
	"referral-hub.backend/internal/interfaces/http/middleware"
	"referral-hub.backend/internal/usecases"
	"referral-hub.backend/pkg/jwt"
	"referral-hub.backend/pkg/logger"
	"referral-hub.backend/pkg/redis"
)

// testServer wires real usecases over in-memory repositories behind a gin
// router with the production route layout.
type testServer struct {
	router    *gin.Engine
	userRepo  *repositories.UserRepository
	linkRepo  *repositories.ReferralLinkRepository
	clickRepo *repositories.ClickRepository
}

type testServerOptions struct {
	sessionStore handlers.SessionStore
	chatClient   usecases.CompletionClient
}

func newTestServer(t *testing.T, opts testServerOptions) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init("production")

	userRepo := repositories.NewUserRepository()
	linkRepo := repositories.NewReferralLinkRepository()
	clickRepo := repositories.NewClickRepository()
	catalog := repositories.NewAchievementCatalog()

	jwtSvc := jwt.NewJWTService("test-secret", time.Hour)
	achievementUsecase := usecases.NewAchievementUsecase(catalog)
	authUsecase := usecases.NewAuthUsecase(userRepo, achievementUsecase, jwtSvc)
	referralUsecase := usecases.NewReferralUsecase(linkRepo, clickRepo, "http://localhost:3000")
	statsUsecase := usecases.NewStatsUsecase(userRepo, linkRepo)
	seedUsecase := usecases.NewSeedUsecase(userRepo, linkRepo, clickRepo, achievementUsecase, "http://localhost:3000")
	chatUsecase := usecases.NewChatUsecase(opts.chatClient)

	authHandler := handlers.NewAuthHandler(authUsecase, opts.sessionStore, time.Hour)
	achievementHandler := handlers.NewAchievementHandler(achievementUsecase, authUsecase)
	referralHandler := handlers.NewReferralHandler(referralUsecase, authUsecase)
	statsHandler := handlers.NewStatsHandler(statsUsecase)
	chatHandler := handlers.NewChatHandler(chatUsecase, authUsecase)
	demoHandler := handlers.NewDemoHandler(seedUsecase)

	var resolver middleware.SessionResolver
	if sr, ok := opts.sessionStore.(middleware.SessionResolver); ok {
		resolver = sr
	}
	authMW := middleware.AuthMiddleware(jwtSvc, resolver)

	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/logout", authMW, authHandler.Logout)
	v1.GET("/auth/me", authMW, authHandler.GetMe)
	v1.GET("/achievements", authMW, achievementHandler.List)
	v1.POST("/referrals", authMW, referralHandler.CreateLink)
	v1.GET("/referrals", authMW, referralHandler.ListLinks)
	v1.GET("/referrals/analytics", authMW, referralHandler.Analytics)
	v1.POST("/track-click/:code", referralHandler.TrackClick)
	v1.GET("/leaderboard", statsHandler.Leaderboard)
	v1.POST("/chat", authMW, chatHandler.Chat)
	v1.GET("/admin/stats", authMW, statsHandler.AdminStats)
	v1.GET("/admin/users", authMW, statsHandler.ListUsers)
	v1.POST("/demo/seed", demoHandler.Seed)

	return &testServer{
		router:    r,
		userRepo:  userRepo,
		linkRepo:  linkRepo,
		clickRepo: clickRepo,
	}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// doSession issues a request authenticated by session id instead of a
// bearer token.
func (s *testServer) doSession(t *testing.T, method, path, sessionID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionIDHeader, sessionID)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// register creates an account through the HTTP surface and returns the
// decoded response body.
func (s *testServer) register(t *testing.T, email, referralCode string) map[string]interface{} {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"firstName":    "Test",
		"lastName":     "User",
		"email":        email,
		"password":     "demo1234",
		"referralCode": referralCode,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func testContext() context.Context {
	return context.Background()
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// stubSessionStore keeps sessions in a map and records the last write.
type stubSessionStore struct {
	sessionID string
	data      *redis.SessionData
	ttl       time.Duration
	sessions  map[string]*redis.SessionData
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*redis.SessionData)}
}

func (s *stubSessionStore) CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error {
	s.sessionID = sessionID
	s.data = data
	s.ttl = expiration
	s.sessions[sessionID] = data
	return nil
}

func (s *stubSessionStore) GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error) {
	data, ok := s.sessions[sessionID]
	if !ok {
		return nil, errors.New("session not found")
	}
	return data, nil
}

func (s *stubSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

// stubChatClient answers with a fixed reply or error.
type stubChatClient struct {
	reply string
	err   error
}

func (s *stubChatClient) Complete(ctx context.Context, systemPrompt, message string) (string, error) {
	return s.reply, s.err
}
