// Package response defines the JSON envelope every retreatly endpoint
// replies with, success and failure alike. Clients branch on Status before
// reading Data; search endpoints additionally carry their own ok/type
// tagging inside the payload.
package response

import "github.com/gin-gonic/gin"

// StandardApiResponse is the wire shape of every API reply.
type StandardApiResponse struct {
	Status     string      `json:"status"`           // "success" or "error"
	StatusCode int         `json:"status_code"`      // HTTP status code
	Message    string      `json:"message"`          // Human-readable message
	Data       interface{} `json:"data,omitempty"`   // Payload for success
	Errors     interface{} `json:"errors,omitempty"` // Validation or error details
}

// RespondJSON writes the envelope. Controllers never write raw bodies.
func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}
