package middleware

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/medicamp/backend/internal/app/models/dto"
	"github.com/medicamp/backend/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func handle(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return rec.Code, body
}

func TestHandleAPIErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"validation", apperrors.NewValidationError("age", "age must be a positive integer"), 400, dto.ErrorCodeValidationFailed},
		{"camp not found", apperrors.ErrCampNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"registration not found", apperrors.ErrRegistrationNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"user not found", apperrors.ErrUserNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"email conflict", apperrors.ErrEmailAlreadyExists, 409, dto.ErrorCodeResourceAlreadyExists},
		{"forbidden", apperrors.ErrPermissionDenied, 403, dto.ErrorCodeForbidden},
		{"token expired", apperrors.ErrTokenExpired, 401, dto.ErrorCodeExpiredToken},
		{"token invalid", apperrors.ErrTokenInvalid, 401, dto.ErrorCodeInvalidToken},
		{"payment provider", apperrors.NewPaymentProviderError("card declined"), 500, dto.ErrorCodeExternalServiceError},
		{"unexpected", errors.New("connection reset"), 500, dto.ErrorCodeInternalServer},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, body := handle(t, tc.err)
			if status != tc.wantStatus {
				t.Errorf("status = %d, want %d", status, tc.wantStatus)
			}
			if body.Success {
				t.Error("success = true on error response")
			}
			if body.Error == nil {
				t.Fatal("error detail missing")
			}
			if body.Error.Code != tc.wantCode {
				t.Errorf("code = %q, want %q", body.Error.Code, tc.wantCode)
			}
		})
	}
}

func TestHandleAPIErrorValidationField(t *testing.T) {
	_, body := handle(t, apperrors.NewValidationError("participantEmail", "participantEmail is required"))

	if body.Error.Field != "participantEmail" {
		t.Errorf("field = %q, want participantEmail", body.Error.Field)
	}
	if body.Error.Message != "participantEmail is required" {
		t.Errorf("message = %q", body.Error.Message)
	}
}

func TestHandleAPIErrorProviderMessagePassthrough(t *testing.T) {
	_, body := handle(t, apperrors.NewPaymentProviderError("Your card was declined."))

	if body.Error.Message != "Your card was declined." {
		t.Errorf("message = %q, provider message must pass through", body.Error.Message)
	}
}
