package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	siteHandler          siteHandler
	projectHandler       projectHandler
	contactHandler       contactHandler
	webhookHandler       webhookHandler
	authHandler          authHandler
	skillHandler         skillHandler
	experienceHandler    experienceHandler
	testimonialHandler   testimonialHandler
	configurationHandler configurationHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}
