package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"community-moderation-api/internal/dto"
	"community-moderation-api/internal/response"
)

// Mock ban service for testing
type mockBanService struct {
	toggleBanFunc   func(ctx context.Context, actorID, userID uuid.UUID, req *dto.ToggleBanRequest) (*dto.UserBanResponse, error)
	getBanStateFunc func(ctx context.Context, userID uuid.UUID) (*dto.UserBanResponse, error)
}

func (m *mockBanService) ToggleBan(ctx context.Context, actorID, userID uuid.UUID, req *dto.ToggleBanRequest) (*dto.UserBanResponse, error) {
	if m.toggleBanFunc != nil {
		return m.toggleBanFunc(ctx, actorID, userID, req)
	}
	return &dto.UserBanResponse{UserID: userID, IsBanned: req.Ban}, nil
}

func (m *mockBanService) GetBanState(ctx context.Context, userID uuid.UUID) (*dto.UserBanResponse, error) {
	if m.getBanStateFunc != nil {
		return m.getBanStateFunc(ctx, userID)
	}
	return &dto.UserBanResponse{UserID: userID}, nil
}

func setupBanRouter(svc *mockBanService, actorID *uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewBanHandler(svc)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if actorID != nil {
			c.Set("user_id", *actorID)
		}
		c.Next()
	})
	router.PUT("/admin/users/:userId/ban", h.ToggleBan)
	router.GET("/admin/users/:userId/ban", h.GetBanState)

	return router
}

func TestToggleBan_Ban(t *testing.T) {
	actorID := uuid.New()
	targetID := uuid.New()
	now := time.Now()

	svc := &mockBanService{
		toggleBanFunc: func(ctx context.Context, gotActorID, userID uuid.UUID, req *dto.ToggleBanRequest) (*dto.UserBanResponse, error) {
			assert.Equal(t, actorID, gotActorID)
			assert.Equal(t, targetID, userID)
			assert.True(t, req.Ban)
			reason := req.Reason
			return &dto.UserBanResponse{
				UserID:    userID,
				IsBanned:  true,
				BannedAt:  &now,
				BanReason: &reason,
			}, nil
		},
	}
	router := setupBanRouter(svc, &actorID)

	body, _ := json.Marshal(dto.ToggleBanRequest{Ban: true, Reason: "반복적인 스팸"})
	req := httptest.NewRequest(http.MethodPut, "/admin/users/"+targetID.String()+"/ban", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserBanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsBanned)
	require.NotNil(t, resp.BanReason)
	assert.Equal(t, "반복적인 스팸", *resp.BanReason)
}

func TestToggleBan_Unban(t *testing.T) {
	actorID := uuid.New()
	targetID := uuid.New()

	svc := &mockBanService{
		toggleBanFunc: func(ctx context.Context, gotActorID, userID uuid.UUID, req *dto.ToggleBanRequest) (*dto.UserBanResponse, error) {
			assert.False(t, req.Ban)
			// 해제 시 사유와 시각은 비워짐
			return &dto.UserBanResponse{UserID: userID, IsBanned: false}, nil
		},
	}
	router := setupBanRouter(svc, &actorID)

	body, _ := json.Marshal(dto.ToggleBanRequest{Ban: false})
	req := httptest.NewRequest(http.MethodPut, "/admin/users/"+targetID.String()+"/ban", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserBanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsBanned)
	assert.Nil(t, resp.BannedAt)
	assert.Nil(t, resp.BanReason)
}

func TestToggleBan_UserNotFound(t *testing.T) {
	actorID := uuid.New()

	svc := &mockBanService{
		toggleBanFunc: func(ctx context.Context, gotActorID, userID uuid.UUID, req *dto.ToggleBanRequest) (*dto.UserBanResponse, error) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		},
	}
	router := setupBanRouter(svc, &actorID)

	body, _ := json.Marshal(dto.ToggleBanRequest{Ban: true})
	req := httptest.NewRequest(http.MethodPut, "/admin/users/"+uuid.NewString()+"/ban", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleBan_InvalidUserID(t *testing.T) {
	actorID := uuid.New()
	svc := &mockBanService{}
	router := setupBanRouter(svc, &actorID)

	body, _ := json.Marshal(dto.ToggleBanRequest{Ban: true})
	req := httptest.NewRequest(http.MethodPut, "/admin/users/not-a-uuid/ban", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBanState_Success(t *testing.T) {
	actorID := uuid.New()
	targetID := uuid.New()

	svc := &mockBanService{
		getBanStateFunc: func(ctx context.Context, userID uuid.UUID) (*dto.UserBanResponse, error) {
			return &dto.UserBanResponse{UserID: userID, IsBanned: true}, nil
		},
	}
	router := setupBanRouter(svc, &actorID)

	req := httptest.NewRequest(http.MethodGet, "/admin/users/"+targetID.String()+"/ban", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserBanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, targetID, resp.UserID)
	assert.True(t, resp.IsBanned)
}
