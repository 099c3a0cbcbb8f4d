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

// ProfileHandler handles the member's own profile endpoints
type ProfileHandler struct {
	auth      *service.AuthService
	validator *validation.Validator
}

// NewProfileHandler creates a new ProfileHandler instance
func NewProfileHandler(auth *service.AuthService, validator *validation.Validator) *ProfileHandler {
	return &ProfileHandler{auth: auth, validator: validator}
}

// Handle dispatches /api/profile by method
func (h *ProfileHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.GetProfile(w, r)
	case http.MethodPut:
		h.UpdateProfile(w, r)
	case http.MethodDelete:
		h.DeleteAccount(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// GetProfile returns the signed-in member's profile
// @Summary Get profile
// @Description Get the current authenticated member's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponse "Profile retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /api/profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	user, err := h.auth.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "لم يتم العثور على بيانات المستخدم", "")
			return
		}
		slog.Error("get profile failed", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "فشل في جلب البيانات", "")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ProfileResponse{User: toUserResponse(user)})
}

// UpdateProfile changes the member's first and last name
// @Summary Update profile
// @Description Update the current member's first and last name
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ProfileUpdateRequest true "Profile data"
// @Success 200 {object} dto.ProfileResponse "Profile updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /api/profile [put]
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "يجب تسجيل الدخول لتحديث البيانات", "")
		return
	}

	var req dto.ProfileUpdateRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	if err := h.validator.Struct(req); err != nil {
		var ve *models.ValidationError
		if errors.As(err, &ve) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, ve.Message, ve.Field)
			return
		}
		utils.WriteErrorResponse(w, http.StatusBadRequest, "جميع الحقول مطلوبة", "")
		return
	}

	user, err := h.auth.UpdateProfile(r.Context(), userID, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "المستخدم غير موجود", "")
			return
		}
		slog.Error("update profile failed", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "فشل في تحديث البيانات", "")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ProfileResponse{
		User:    toUserResponse(user),
		Message: "تم تحديث البيانات بنجاح",
	})
}

// DeleteAccount removes the member's account and every candidate they created
// @Summary Delete account
// @Description Delete the current member's account and their candidates
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse "Account deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /api/profile [delete]
func (h *ProfileHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "لا يوجد مستخدم", "")
		return
	}

	if err := h.auth.DeleteAccount(r.Context(), userID); err != nil {
		switch {
		case errors.Is(err, models.ErrUnauthorized):
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "لا يوجد مستخدم", "")
		case errors.Is(err, models.ErrNotFound):
			utils.WriteErrorResponse(w, http.StatusNotFound, "المستخدم غير موجود", "")
		default:
			slog.Error("delete account failed", "error", err)
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "فشل في حذف الحساب", "")
		}
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "تم حذف الحساب بنجاح"})
}
