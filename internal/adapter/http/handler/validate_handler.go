package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"backend/internal/domain/content"
	"backend/internal/domain/platform"
	"backend/internal/domain/validation"
	validateusecase "backend/internal/usecase/validate"

	"github.com/gin-gonic/gin"
)

const messageValidateInvalidRequest = "invalid validate request"

// 検証ユースケースの契約。
type ValidateExecutor interface {
	Execute(ctx context.Context, in *validateusecase.Input) (*validateusecase.Output, error)
}

type ValidateHandler struct {
	validateUsecase ValidateExecutor
}

// ValidateHandler を生成する。
func NewValidateHandler(usecase ValidateExecutor) *ValidateHandler {
	return &ValidateHandler{validateUsecase: usecase}
}

// POST /validate の応答。
type ValidateResponse struct {
	Validation validation.Result `json:"validation"`
	Content    *content.Content  `json:"content"`
}

/**
 * POST /validate のリクエストを検証し、採点結果を返す。
 * 入力はコンテンツそのもので、Content の JSON タグに従って受け取る。
 */
func (h *ValidateHandler) Validate(c *gin.Context) {
	var req content.Content
	// JSON パースに失敗したら入力不備
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: messageValidateInvalidRequest})
		return
	}
	if strings.TrimSpace(string(req.Platform)) == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Message: messageValidateInvalidRequest})
		return
	}

	out, err := h.validateUsecase.Execute(c.Request.Context(), &validateusecase.Input{Content: &req})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ValidateResponse{Validation: out.Result, Content: &req})
}

/**
 * ユースケースからのエラーを HTTP ステータスとメッセージへ写し替える。
 */
func (h *ValidateHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, validateusecase.ErrNilInput):
		c.JSON(http.StatusBadRequest, errorResponse{Message: messageValidateInvalidRequest})
	case errors.Is(err, platform.ErrUnknownPlatform):
		c.JSON(http.StatusNotFound, errorResponse{Message: messageUnknownPlatform})
	default:
		log.Printf("POST /validate 失敗: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Message: messageInternalError})
	}
}
