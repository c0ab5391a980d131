package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"community-moderation-api/internal/domain"
	"community-moderation-api/internal/dto"
	"community-moderation-api/internal/response"
	"community-moderation-api/internal/service"
)

// ModerationHandler handles queue review, restore/purge and disputes
type ModerationHandler struct {
	moderationService service.ModerationService
}

// NewModerationHandler creates a new ModerationHandler
func NewModerationHandler(moderationService service.ModerationService) *ModerationHandler {
	return &ModerationHandler{
		moderationService: moderationService,
	}
}

// ListQueue godoc
// @Summary      모더레이션 큐 조회
// @Description  신고 수 내림차순으로 큐 항목을 조회합니다 (관리자 전용)
// @Tags         moderation
// @Produce      json
// @Param        limit query int false "페이지 크기 (기본 50, 최대 200)"
// @Param        offset query int false "오프셋"
// @Success      200 {object} response.SuccessResponse{data=dto.QueueListResponse} "큐 조회 성공"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      403 {object} response.ErrorResponse "관리자 권한 필요"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /admin/queue [get]
func (h *ModerationHandler) ListQueue(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	result, err := h.moderationService.ListQueue(c.Request.Context(), limit, offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// ListMyQueue godoc
// @Summary      내 큐 항목 조회
// @Description  내가 작성한 콘텐츠 중 큐에 들어간 항목을 조회합니다
// @Tags         moderation
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.QueueEntryResponse} "조회 성공"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /queue/me [get]
func (h *ModerationHandler) ListMyQueue(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.moderationService.ListQueueForUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// RestoreContent godoc
// @Summary      콘텐츠 복원
// @Description  큐 항목을 복원하고 플래그 상태를 초기화합니다 (관리자 전용)
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Param        queueId path string true "Queue Entry ID (UUID)"
// @Param        request body dto.RestoreRequest false "복원 사유"
// @Success      200 {object} response.SuccessResponse "복원 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "관리자 권한 필요"
// @Failure      404 {object} response.ErrorResponse "큐 항목을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /admin/queue/{queueId}/restore [post]
func (h *ModerationHandler) RestoreContent(c *gin.Context) {
	actorID, ok := requireUserID(c)
	if !ok {
		return
	}

	queueID, err := uuid.Parse(c.Param("queueId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid queue entry ID")
		return
	}

	var req dto.RestoreRequest
	// body 없는 복원도 허용
	_ = c.ShouldBindJSON(&req)

	if err := h.moderationService.RestoreContent(c.Request.Context(), actorID, queueID, req.Reason); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Content restored successfully"})
}

// PurgeContent godoc
// @Summary      콘텐츠 영구 삭제
// @Description  큐에 있는 콘텐츠를 영구 삭제합니다. 큐에 없으면 no-op (관리자 전용)
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Param        contentType path string true "Content Type" Enums(discussion, product)
// @Param        contentId path string true "Content ID (UUID)"
// @Param        request body dto.PurgeRequest false "삭제 사유"
// @Success      200 {object} response.SuccessResponse "삭제 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "관리자 권한 필요"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /admin/contents/{contentType}/{contentId} [delete]
func (h *ModerationHandler) PurgeContent(c *gin.Context) {
	actorID, ok := requireUserID(c)
	if !ok {
		return
	}

	contentType := domain.ContentType(c.Param("contentType"))
	contentID, err := uuid.Parse(c.Param("contentId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid content ID")
		return
	}

	var req dto.PurgeRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.moderationService.PurgeContent(c.Request.Context(), actorID, contentType, contentID, req.Reason); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, map[string]string{"message": "Content purged successfully"})
}

// SubmitDispute godoc
// @Summary      이의 제기
// @Description  내가 작성한 큐 항목에 이의를 제기합니다. 항목은 큐에 남습니다
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Param        queueId path string true "Queue Entry ID (UUID)"
// @Param        request body dto.DisputeRequest true "이의 제기 사유"
// @Success      200 {object} response.SuccessResponse{data=dto.QueueEntryResponse} "이의 제기 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      403 {object} response.ErrorResponse "작성자만 이의 제기 가능"
// @Failure      404 {object} response.ErrorResponse "큐 항목을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /queue/{queueId}/dispute [post]
func (h *ModerationHandler) SubmitDispute(c *gin.Context) {
	actorID, ok := requireUserID(c)
	if !ok {
		return
	}

	queueID, err := uuid.Parse(c.Param("queueId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid queue entry ID")
		return
	}

	var req dto.DisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.moderationService.SubmitDispute(c.Request.Context(), actorID, queueID, req.Reason)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// ListAdminActions godoc
// @Summary      감사 로그 조회
// @Description  관리자 행동 감사 로그를 최신순으로 조회합니다 (관리자 전용)
// @Tags         moderation
// @Produce      json
// @Param        limit query int false "페이지 크기 (기본 50, 최대 200)"
// @Param        offset query int false "오프셋"
// @Success      200 {object} response.SuccessResponse{data=dto.AdminActionListResponse} "조회 성공"
// @Failure      403 {object} response.ErrorResponse "관리자 권한 필요"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /admin/actions [get]
func (h *ModerationHandler) ListAdminActions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	result, err := h.moderationService.ListAdminActions(c.Request.Context(), limit, offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
