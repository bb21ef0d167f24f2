package handler

const messageInternalError = "internal server error"

// エラー応答の共通形。
type errorResponse struct {
	Message string `json:"message"`
}
