package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"community-moderation-api/internal/domain"
	"community-moderation-api/internal/dto"
	"community-moderation-api/internal/response"
	"community-moderation-api/internal/service"
)

// ContentHandler handles comment creation and retrieval
type ContentHandler struct {
	contentService service.ContentService
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
	}
}

// CreateContent godoc
// @Summary      댓글 작성
// @Description  토론 또는 상품 댓글을 작성합니다. 게스트는 AI 안전성 검사를 거칩니다
// @Tags         contents
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateContentRequest true "댓글 작성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.ContentResponse} "댓글 작성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "차단된 사용자"
// @Failure      422 {object} response.ErrorResponse "AI 검사 거부"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /contents [post]
func (h *ContentHandler) CreateContent(c *gin.Context) {
	var req dto.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	// 인증은 선택 - 없으면 게스트 경로
	var authorID *uuid.UUID
	if userID, ok := currentUserID(c); ok {
		authorID = &userID
	}

	content, err := h.contentService.CreateContent(c.Request.Context(), authorID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, content)
}

// GetContent godoc
// @Summary      댓글 조회
// @Description  댓글 하나를 조회합니다
// @Tags         contents
// @Produce      json
// @Param        contentType path string true "Content Type" Enums(discussion, product)
// @Param        contentId path string true "Content ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.ContentResponse} "댓글 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "댓글을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /contents/{contentType}/{contentId} [get]
func (h *ContentHandler) GetContent(c *gin.Context) {
	contentType := domain.ContentType(c.Param("contentType"))
	if !contentType.Valid() {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "contentType must be one of: discussion, product")
		return
	}

	contentID, err := uuid.Parse(c.Param("contentId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid content ID")
		return
	}

	content, err := h.contentService.GetContent(c.Request.Context(), contentType, contentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, content)
}
