package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"community-moderation-api/internal/dto"
	"community-moderation-api/internal/response"
	"community-moderation-api/internal/service"
)

// BlacklistHandler handles blacklist keyword management
type BlacklistHandler struct {
	blacklistService service.BlacklistService
}

// NewBlacklistHandler creates a new BlacklistHandler
func NewBlacklistHandler(blacklistService service.BlacklistService) *BlacklistHandler {
	return &BlacklistHandler{
		blacklistService: blacklistService,
	}
}

// AddKeyword godoc
// @Summary      블랙리스트 키워드 추가
// @Description  키워드를 정규화(소문자/trim)하여 추가합니다 (관리자 전용)
// @Tags         blacklist
// @Accept       json
// @Produce      json
// @Param        request body dto.AddKeywordRequest true "키워드 추가 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.KeywordResponse} "키워드 추가 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "관리자 권한 필요"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /admin/blacklist [post]
func (h *BlacklistHandler) AddKeyword(c *gin.Context) {
	actorID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.AddKeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	keyword, err := h.blacklistService.AddKeyword(c.Request.Context(), actorID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, keyword)
}

// RemoveKeyword godoc
// @Summary      블랙리스트 키워드 제거
// @Description  키워드를 비활성화합니다. 행은 삭제하지 않습니다 (관리자 전용)
// @Tags         blacklist
// @Produce      json
// @Param        keywordId path string true "Keyword ID (UUID)"
// @Success      200 {object} response.SuccessResponse "키워드 제거 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "관리자 권한 필요"
// @Failure      404 {object} response.ErrorResponse "키워드를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /admin/blacklist/{keywordId} [delete]
func (h *BlacklistHandler) RemoveKeyword(c *gin.Context) {
	actorID, ok := requireUserID(c)
	if !ok {
		return
	}

	keywordID, err := uuid.Parse(c.Param("keywordId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid keyword ID")
		return
	}

	if err := h.blacklistService.RemoveKeyword(c.Request.Context(), actorID, keywordID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Keyword removed successfully"})
}

// ListKeywords godoc
// @Summary      블랙리스트 키워드 목록
// @Description  활성 키워드를 최신순으로 조회합니다 (관리자 전용)
// @Tags         blacklist
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.KeywordResponse} "목록 조회 성공"
// @Failure      403 {object} response.ErrorResponse "관리자 권한 필요"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /admin/blacklist [get]
func (h *BlacklistHandler) ListKeywords(c *gin.Context) {
	keywords, err := h.blacklistService.ListKeywords(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, keywords)
}
