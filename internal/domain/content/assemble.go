package content

import (
	"time"

	"backend/internal/domain/extract"
	"backend/internal/domain/platform"
)

// 抽出の成否に応じた信頼度の基準値。
const (
	confidenceExtracted = 0.85
	confidencePartial   = 0.55
	confidenceFallback  = 0.3
)

/**
 * Assemble は抽出結果を Content へ写し替える。検証はここでは行わない。
 * 信頼度はタイトルとタグの両方を実際に抽出できたかで決まる:
 * 両方 → 0.85 以上（生成器申告値が高ければそちら）、片方のみ → 0.55、
 * 全滅 → 0.3 以下。
 */
func Assemble(fields extract.Fields, p platform.Platform) *Content {
	c := &Content{
		Platform:        p,
		Title:           fields.Title,
		Tags:            fields.Tags,
		ConfidenceScore: assembleConfidence(fields),
		GeneratedAt:     time.Now().UTC(),
	}

	for name, value := range fields.Extended {
		c.SetField(name, value)
	}
	return c
}

func assembleConfidence(fields extract.Fields) float64 {
	switch {
	case fields.TitleExtracted && fields.TagsExtracted:
		if fields.Confidence > confidenceExtracted {
			return fields.Confidence
		}
		return confidenceExtracted
	case fields.TitleExtracted || fields.TagsExtracted:
		return confidencePartial
	default:
		return confidenceFallback
	}
}
