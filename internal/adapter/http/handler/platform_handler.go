package handler

import (
	"net/http"

	"backend/internal/domain/platform"

	"github.com/gin-gonic/gin"
)

const messageUnknownPlatform = "unknown platform"

type PlatformHandler struct{}

// PlatformHandler を生成する。
func NewPlatformHandler() *PlatformHandler {
	return &PlatformHandler{}
}

// GET /platforms の応答。
type ListPlatformsResponse struct {
	Platforms []PlatformSummary `json:"platforms"`
}

type PlatformSummary struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// GET /platforms/:platform/rules の応答。
type RulesResponse struct {
	Platform            string   `json:"platform"`
	DisplayName         string   `json:"display_name"`
	TitleMaxLength      int      `json:"title_max_length"`
	TagMinCount         int      `json:"tag_min_count"`
	TagMaxCount         int      `json:"tag_max_count"`
	FieldLimits         []Limit  `json:"field_limits"`
	ContentStyle        string   `json:"content_style"`
	StyleGuidelines     []string `json:"style_guidelines"`
	SpecialRequirements []string `json:"special_requirements"`
}

type Limit struct {
	Field         string `json:"field"`
	MaxLength     int    `json:"max_length"`
	OptimalLength int    `json:"optimal_length,omitempty"`
}

/**
 * GET /platforms の応答として対応プラットフォーム一覧を返す。
 */
func (h *PlatformHandler) ListPlatforms(c *gin.Context) {
	all := platform.All()
	summaries := make([]PlatformSummary, 0, len(all))
	for _, p := range all {
		summaries = append(summaries, PlatformSummary{
			Name:        string(p),
			DisplayName: p.DisplayName(),
		})
	}
	c.JSON(http.StatusOK, ListPlatformsResponse{Platforms: summaries})
}

/**
 * GET /platforms/:platform/rules のリクエストを検証し、ルール一式を返す。
 */
func (h *PlatformHandler) GetRules(c *gin.Context) {
	p, err := platform.Parse(c.Param("platform"))
	if err != nil {
		c.JSON(http.StatusNotFound, errorResponse{Message: messageUnknownPlatform})
		return
	}
	rules, err := platform.RulesFor(p)
	if err != nil {
		c.JSON(http.StatusNotFound, errorResponse{Message: messageUnknownPlatform})
		return
	}

	limits := make([]Limit, 0, len(rules.FieldLimits()))
	for _, limit := range rules.FieldLimits() {
		limits = append(limits, Limit{
			Field:         limit.Field,
			MaxLength:     limit.Max,
			OptimalLength: rules.OptimalLengthFor(limit.Field),
		})
	}

	c.JSON(http.StatusOK, RulesResponse{
		Platform:            string(p),
		DisplayName:         p.DisplayName(),
		TitleMaxLength:      rules.TitleMaxLength,
		TagMinCount:         rules.TagMinCount,
		TagMaxCount:         rules.TagMaxCount,
		FieldLimits:         limits,
		ContentStyle:        string(rules.ContentStyle),
		StyleGuidelines:     rules.StyleGuidelines,
		SpecialRequirements: rules.SpecialRequirements,
	})
}
