package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"UGEM_BACK-END/internal/dto"
	"UGEM_BACK-END/internal/models"
	"UGEM_BACK-END/internal/service"
	"UGEM_BACK-END/internal/utils"
	"UGEM_BACK-END/internal/validation"
)

// ForgotPasswordHandler handles the email-code password reset flow
type ForgotPasswordHandler struct {
	auth      *service.AuthService
	validator *validation.Validator
}

// NewForgotPasswordHandler creates a new ForgotPasswordHandler instance
func NewForgotPasswordHandler(auth *service.AuthService, validator *validation.Validator) *ForgotPasswordHandler {
	return &ForgotPasswordHandler{auth: auth, validator: validator}
}

// ForgotPassword emails a verification code to the member
// @Summary Request password reset
// @Description Send a 6-digit verification code to the member's email
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Member email"
// @Success 200 {object} dto.ForgotPasswordResponse "Code sent"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Email not registered"
// @Failure 429 {object} dto.ErrorResponse "A code was already sent"
// @Router /api/auth/forgot-password [post]
func (h *ForgotPasswordHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.ForgotPasswordRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	if err := h.validator.Struct(req); err != nil {
		var ve *models.ValidationError
		if errors.As(err, &ve) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, ve.Message, ve.Field)
			return
		}
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	ttl, err := h.auth.RequestPasswordReset(r.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			utils.WriteErrorResponse(w, http.StatusNotFound, "البريد الإلكتروني غير مسجل", "")
		case errors.Is(err, service.ErrResetCodePending):
			utils.WriteErrorResponse(w, http.StatusTooManyRequests, "تم إرسال رمز التحقق بالفعل، يرجى الانتظار", "")
		default:
			slog.Error("forgot password failed", "error", err)
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "فشل في إرسال رمز التحقق", "")
		}
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ForgotPasswordResponse{
		Message:   "تم إرسال رمز التحقق إلى بريدك الإلكتروني",
		ExpiresIn: int(ttl.Seconds()),
	})
}

// VerifyResetCode exchanges an emailed code for a short-lived reset token
// @Summary Verify reset code
// @Description Exchange the emailed 6-digit code for a reset token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.VerifyResetCodeRequest true "Email and code"
// @Success 200 {object} dto.VerifyResetCodeResponse "Code verified"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired code"
// @Router /api/auth/verify-reset-code [post]
func (h *ForgotPasswordHandler) VerifyResetCode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.VerifyResetCodeRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	if err := h.validator.Struct(req); err != nil {
		var ve *models.ValidationError
		if errors.As(err, &ve) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, ve.Message, ve.Field)
			return
		}
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	resetToken, err := h.auth.VerifyResetCode(r.Context(), req.Email, req.Code)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "رمز التحقق غير صحيح أو منتهي الصلاحية", "")
			return
		}
		slog.Error("verify reset code failed", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "فشل في التحقق من الرمز", "")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.VerifyResetCodeResponse{
		ResetToken: resetToken,
		Message:    "تم التحقق من الرمز بنجاح",
	})
}

// ResetPassword sets a new password using a reset token
// @Summary Reset password
// @Description Set a new password using the reset token from code verification
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} dto.MessageResponse "Password updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired reset token"
// @Router /api/auth/reset-password [post]
func (h *ForgotPasswordHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.ResetPasswordRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	if err := h.validator.Struct(req); err != nil {
		var ve *models.ValidationError
		if errors.As(err, &ve) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, ve.Message, ve.Field)
			return
		}
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	if err := h.auth.ResetPassword(r.Context(), req.ResetToken, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, models.ErrUnauthorized):
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "رمز إعادة التعيين غير صالح", "")
		case errors.Is(err, models.ErrNotFound):
			utils.WriteErrorResponse(w, http.StatusNotFound, "المستخدم غير موجود", "")
		default:
			slog.Error("reset password failed", "error", err)
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "فشل في تحديث كلمة المرور", "")
		}
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "تم تحديث كلمة المرور بنجاح"})
}
