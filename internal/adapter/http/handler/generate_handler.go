package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"backend/internal/domain/content"
	"backend/internal/domain/platform"
	"backend/internal/domain/transcript"
	"backend/internal/domain/validation"
	generateusecase "backend/internal/usecase/generate"

	"github.com/gin-gonic/gin"
)

const (
	messageGenerateInvalidRequest = "invalid generate request"
)

// 単体生成ユースケースの契約。
type GenerateExecutor interface {
	Execute(ctx context.Context, in *generateusecase.Input) (*generateusecase.Output, error)
}

// 一括生成ユースケースの契約。
type BatchExecutor interface {
	Execute(ctx context.Context, in *generateusecase.BatchInput) (*generateusecase.BatchOutput, error)
}

type GenerateHandler struct {
	generateUsecase GenerateExecutor
	batchUsecase    BatchExecutor
}

// GenerateHandler を生成する。
func NewGenerateHandler(generateUsecase GenerateExecutor, batchUsecase BatchExecutor) *GenerateHandler {
	return &GenerateHandler{
		generateUsecase: generateUsecase,
		batchUsecase:    batchUsecase,
	}
}

// 文字起こしの入力。
type TranscriptRequest struct {
	Content         string `json:"content"`
	Title           string `json:"title"`
	DurationSeconds int    `json:"duration_seconds"`
	Language        string `json:"language"`
	Category        string `json:"category"`
}

// 生成オプションの入力。
type OptionsRequest struct {
	Tone              string `json:"tone"`
	IncludeEmojis     bool   `json:"include_emojis"`
	TargetAudience    string `json:"target_audience"`
	ExtraInstructions string `json:"extra_instructions"`
}

// POST /generate の入力。
type GenerateRequest struct {
	Transcript TranscriptRequest `json:"transcript"`
	Platform   string            `json:"platform"`
	Options    OptionsRequest    `json:"options"`
}

// POST /generate の応答。
type GenerateResponse struct {
	Content    *content.Content  `json:"content"`
	Validation validation.Result `json:"validation"`
}

// POST /generate/batch の入力。
type BatchRequest struct {
	Transcript TranscriptRequest `json:"transcript"`
	Platforms  []string          `json:"platforms"`
	Options    OptionsRequest    `json:"options"`
}

// POST /generate/batch のプラットフォーム別結果。
type BatchItemResponse struct {
	Platform   string             `json:"platform"`
	Content    *content.Content   `json:"content,omitempty"`
	Validation *validation.Result `json:"validation,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// POST /generate/batch の応答。
type BatchResponse struct {
	RequestID        string              `json:"request_id"`
	Results          []BatchItemResponse `json:"results"`
	SuccessCount     int                 `json:"success_count"`
	ErrorCount       int                 `json:"error_count"`
	ProcessingTimeMS int64               `json:"processing_time_ms"`
}

/**
 * POST /generate のリクエストを検証し、ユースケースへ委譲して結果を返す。
 */
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	// JSON パースに失敗したら入力不備
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: messageGenerateInvalidRequest})
		return
	}
	if strings.TrimSpace(req.Platform) == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Message: messageGenerateInvalidRequest})
		return
	}

	tr, err := buildTranscript(req.Transcript)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	out, err := h.generateUsecase.Execute(c.Request.Context(), &generateusecase.Input{
		Transcript: tr,
		Platform:   req.Platform,
		Options:    buildOptions(req.Options),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{Content: out.Content, Validation: out.Result})
}

/**
 * POST /generate/batch のリクエストを検証し、プラットフォーム別の結果を返す。
 */
func (h *GenerateHandler) GenerateBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: messageGenerateInvalidRequest})
		return
	}
	if len(req.Platforms) == 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Message: messageGenerateInvalidRequest})
		return
	}

	tr, err := buildTranscript(req.Transcript)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	out, err := h.batchUsecase.Execute(c.Request.Context(), &generateusecase.BatchInput{
		Transcript: tr,
		Platforms:  req.Platforms,
		Options:    buildOptions(req.Options),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	results := make([]BatchItemResponse, 0, len(out.Items))
	for _, item := range out.Items {
		resp := BatchItemResponse{Platform: item.Platform, Error: item.Error}
		if item.Output != nil {
			resp.Content = item.Output.Content
			result := item.Output.Result
			resp.Validation = &result
		}
		results = append(results, resp)
	}

	c.JSON(http.StatusOK, BatchResponse{
		RequestID:        out.RequestID,
		Results:          results,
		SuccessCount:     out.SuccessCount,
		ErrorCount:       out.ErrorCount,
		ProcessingTimeMS: out.ProcessingTime.Milliseconds(),
	})
}

/**
 * ユースケースからのエラーを HTTP ステータスとメッセージへ写し替える。
 */
func (h *GenerateHandler) handleError(c *gin.Context, err error) {
	switch {
	// ユースケースの入力不足
	case errors.Is(err, generateusecase.ErrNilInput),
		errors.Is(err, generateusecase.ErrNoPlatforms):
		c.JSON(http.StatusBadRequest, errorResponse{Message: messageGenerateInvalidRequest})
	// 未対応のプラットフォーム
	case errors.Is(err, platform.ErrUnknownPlatform):
		c.JSON(http.StatusNotFound, errorResponse{Message: messageUnknownPlatform})
	default:
		log.Printf("POST /generate 失敗: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Message: messageInternalError})
	}
}

func buildTranscript(req TranscriptRequest) (*transcript.Transcript, error) {
	return transcript.New(req.Content, req.Title, req.DurationSeconds, req.Language, req.Category)
}

func buildOptions(req OptionsRequest) generateusecase.Options {
	return generateusecase.Options{
		Tone:              req.Tone,
		IncludeEmojis:     req.IncludeEmojis,
		TargetAudience:    req.TargetAudience,
		ExtraInstructions: req.ExtraInstructions,
	}
}
