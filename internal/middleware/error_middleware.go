package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/trueproject/capstone/internal/app/models/dto"
	"github.com/trueproject/capstone/internal/pkg/apperrors"
)

// --- Central Error Handling Middleware/Function ---

// HandleAPIError translates application errors into HTTP responses. Every
// typed registration failure maps to exactly one status and error code; the
// caller never sees a partial state.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := err.Error()
	var details interface{}
	if errors.As(err, &custom) {
		message = custom.Message
		if custom.Details != nil {
			details = custom.Details
		}
	}

	switch {
	case errors.Is(err, apperrors.ErrDuplicateInRequest):
		respondError(c, 400, dto.ErrorCodeDuplicateInRequest, message, details)
	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		respondError(c, 400, dto.ErrorCodeAlreadyRegistered, message, details)
	case errors.Is(err, apperrors.ErrDuplicateTeamName):
		respondError(c, 409, dto.ErrorCodeDuplicateTeamName, "Team name already exists", nil)
	case errors.Is(err, apperrors.ErrNoEligibleMentor):
		respondError(c, 409, dto.ErrorCodeNoEligibleMentor, message, details)
	case errors.Is(err, apperrors.ErrBadRequest), errors.Is(err, apperrors.ErrValidationFailed):
		respondError(c, 400, dto.ErrorCodeValidationFailed, message, details)
	case errors.Is(err, apperrors.ErrResourceNotFound), errors.Is(err, apperrors.ErrUserNotFound):
		respondError(c, 404, dto.ErrorCodeResourceNotFound, message, nil)
	case errors.Is(err, apperrors.ErrResourceAlreadyExists), errors.Is(err, apperrors.ErrConflict):
		respondError(c, 409, dto.ErrorCodeResourceAlreadyExists, message, nil)
	case errors.Is(err, apperrors.ErrStorageFault):
		respondError(c, 500, dto.ErrorCodeDatabaseError, "Storage fault, nothing was committed. The request may be retried.", nil)
	default:
		respondError(c, 500, dto.ErrorCodeInternalServer, "Internal server error", nil)
	}
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string, details interface{}) {
	detail := dto.NewErrorDetail(code, message)
	if details != nil {
		detail = detail.WithDetails(details)
	}
	c.JSON(status, dto.APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	})
}
