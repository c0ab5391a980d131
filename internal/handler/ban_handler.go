package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"community-moderation-api/internal/dto"
	"community-moderation-api/internal/response"
	"community-moderation-api/internal/service"
)

// BanHandler handles user ban management
type BanHandler struct {
	banService service.BanService
}

// NewBanHandler creates a new BanHandler
func NewBanHandler(banService service.BanService) *BanHandler {
	return &BanHandler{
		banService: banService,
	}
}

// ToggleBan godoc
// @Summary      사용자 차단/해제
// @Description  사용자의 차단 상태를 변경합니다. 해제 시 사유와 시각이 비워집니다 (관리자 전용)
// @Tags         bans
// @Accept       json
// @Produce      json
// @Param        userId path string true "User ID (UUID)"
// @Param        request body dto.ToggleBanRequest true "차단 토글 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.UserBanResponse} "변경 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "관리자 권한 필요"
// @Failure      404 {object} response.ErrorResponse "사용자를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /admin/users/{userId}/ban [put]
func (h *BanHandler) ToggleBan(c *gin.Context) {
	actorID, ok := requireUserID(c)
	if !ok {
		return
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid user ID")
		return
	}

	var req dto.ToggleBanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	user, err := h.banService.ToggleBan(c.Request.Context(), actorID, userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, user)
}

// GetBanState godoc
// @Summary      차단 상태 조회
// @Description  사용자의 현재 차단 상태를 조회합니다 (관리자 전용)
// @Tags         bans
// @Produce      json
// @Param        userId path string true "User ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.UserBanResponse} "조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "관리자 권한 필요"
// @Failure      404 {object} response.ErrorResponse "사용자를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /admin/users/{userId}/ban [get]
func (h *BanHandler) GetBanState(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid user ID")
		return
	}

	user, err := h.banService.GetBanState(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, user)
}
