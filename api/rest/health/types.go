package health

const (
	StatusOK      = "ok"
	StatusHealthy = "healthy"

	RunningMessage = "devops-project is running"
)

// StatusResponse is the root status payload
type StatusResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"devops-project is running"`
}

// Response is the health check payload
type Response struct {
	Status string `json:"status" example:"healthy"`
}
