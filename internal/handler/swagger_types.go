package handler

import "time"

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// ParseRequest represents the JSON body of a stateless parse request.
type ParseRequest struct {
	Document string `json:"document" binding:"required" example:"# Lisbon Escape\nGet ready for a trip to Lisbon!\n## Packing List\n- Sunscreen"`
}

// CreatePlanRequest represents the create plan request body.
type CreatePlanRequest struct {
	Name     string `json:"name" example:"Summer in Lisbon"`
	Document string `json:"document" binding:"required" example:"# Lisbon Escape\nGet ready for a trip to Lisbon!"`
}

// SharePlanRequest represents the share plan request body. When email is
// omitted the plan is sent to the caller.
type SharePlanRequest struct {
	Email string `json:"email" binding:"omitempty,email" example:"friend@example.com"`
}

// --- Response Types ---

// SourceURLResponse represents a presigned link to a plan's raw document.
type SourceURLResponse struct {
	URL       string    `json:"url" example:"https://bucket.s3.amazonaws.com/owners/.../source.md?X-Amz-Signature=..."`
	ExpiresAt time.Time `json:"expires_at" example:"2025-01-15T10:30:00Z"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
