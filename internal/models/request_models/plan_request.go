package request_models

type CreatePlanRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}
