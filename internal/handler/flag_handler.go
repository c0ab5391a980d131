package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"community-moderation-api/internal/dto"
	"community-moderation-api/internal/response"
	"community-moderation-api/internal/service"
)

// FlagHandler handles user-initiated flagging
type FlagHandler struct {
	flagService service.FlagService
}

// NewFlagHandler creates a new FlagHandler
func NewFlagHandler(flagService service.FlagService) *FlagHandler {
	return &FlagHandler{
		flagService: flagService,
	}
}

// FlagContent godoc
// @Summary      콘텐츠 신고
// @Description  댓글을 신고합니다. 같은 사용자의 중복 신고는 거부됩니다
// @Tags         flags
// @Accept       json
// @Produce      json
// @Param        request body dto.FlagContentRequest true "신고 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.FlagContentResponse} "신고 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      404 {object} response.ErrorResponse "콘텐츠를 찾을 수 없음"
// @Failure      409 {object} response.ErrorResponse "중복 신고"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /flags [post]
func (h *FlagHandler) FlagContent(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.FlagContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.flagService.FlagContent(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
