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

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	auth      *service.AuthService
	validator *validation.Validator
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(auth *service.AuthService, validator *validation.Validator) *AuthHandler {
	return &AuthHandler{auth: auth, validator: validator}
}

// Register handles member registration
// @Summary Register a new member
// @Description Create a new account with first name, last name, email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Member registration data"
// @Success 201 {object} dto.AuthResponse "Account created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.RegisterRequest
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

	user, err := h.auth.Signup(r.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			utils.WriteErrorResponse(w, http.StatusConflict, "البريد الإلكتروني مسجل بالفعل", "")
			return
		}
		slog.Error("signup failed", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "فشل في إنشاء الحساب", "")
		return
	}

	token, err := h.auth.GenerateToken(user)
	if err != nil {
		slog.Error("token generation failed", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", "")
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.AuthResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}

// Login handles member login
// @Summary Login member
// @Description Authenticate a member with email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
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

	user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "البريد الإلكتروني أو كلمة المرور غير صحيحة", "")
			return
		}
		slog.Error("login failed", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "البريد الإلكتروني أو كلمة المرور غير صحيحة", "")
		return
	}

	token, err := h.auth.GenerateToken(user)
	if err != nil {
		slog.Error("token generation failed", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", "")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}
