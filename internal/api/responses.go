package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type SuccessResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Availability updated successfully"`
}

type CreatedResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Time slot blocked successfully"`
	ID      string `json:"id" example:"5f0c1a2b-9f3e-4a8d-b1c7-2d5e6f7a8b9c"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
