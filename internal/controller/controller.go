package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/dto"
	"github.com/mekalanagasita-alt/Online-Examination-System/internal/service"
	"github.com/rs/zerolog/log"
)

// ResultURL is where a student finds their result for an exam.
func ResultURL(examID uint) string {
	return fmt.Sprintf("/api/v1/exams/%d/result", examID)
}

// ParseID reads a positive numeric path parameter. On failure it writes a
// 400 response and returns false.
func ParseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: fmt.Sprintf("Invalid %s format", name)})
		return 0, false
	}
	return uint(id), true
}

// BindError writes a 400 for a request body that failed to bind.
func BindError(ctx *gin.Context, err error) {
	details := []string{err.Error()}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details = details[:0]
		for _, fe := range verrs {
			details = append(details, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
		}
	}
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: details})
}

// RespondError maps service errors onto HTTP statuses. A duplicate attempt
// answers 409 with the location of the existing result.
func RespondError(ctx *gin.Context, examID uint, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid exam", Details: verr.Problems})
	case errors.Is(err, service.ErrDuplicateAttempt):
		ctx.JSON(http.StatusConflict, dto.AttemptConflictResponse{
			Message:   "You have already taken this exam",
			ResultURL: ResultURL(examID),
		})
	case errors.Is(err, service.ErrExamNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Exam not found"})
	case errors.Is(err, service.ErrResultNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Result not found"})
	case errors.Is(err, service.ErrExamInactive):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "Exam is not active"})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
	}
}
