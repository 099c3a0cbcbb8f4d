package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"UGEM_BACK-END/internal/dto"
	"UGEM_BACK-END/internal/models"
	"UGEM_BACK-END/internal/service"
	"UGEM_BACK-END/internal/utils"
	"UGEM_BACK-END/internal/validation"
)

// CandidateHandler handles candidate registry HTTP requests
type CandidateHandler struct {
	candidates *service.CandidateService
	validator  *validation.Validator
}

// NewCandidateHandler creates a new CandidateHandler instance
func NewCandidateHandler(candidates *service.CandidateService, validator *validation.Validator) *CandidateHandler {
	return &CandidateHandler{candidates: candidates, validator: validator}
}

// HandleCollection dispatches /api/candidates by method
func (h *CandidateHandler) HandleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.List(w, r)
	case http.MethodPost:
		h.Create(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleItem dispatches /api/candidates/{id} by method
func (h *CandidateHandler) HandleItem(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/candidates/")
	if idStr == "" || strings.Contains(idStr, "/") {
		http.NotFound(w, r)
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid candidate ID", "Candidate ID must be a valid UUID")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.Detail(w, r, id)
	case http.MethodPut:
		h.Update(w, r, id)
	case http.MethodDelete:
		h.Delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Create registers a new candidate for the signed-in member
// @Summary Register a candidate
// @Description Create a candidate profile owned by the signed-in member. Each member may register at most one candidate.
// @Tags candidates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCandidateRequest true "Candidate data"
// @Success 201 {object} dto.CreateCandidateResponse "Candidate created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Member already has a candidate"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/candidates [post]
func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "يجب تسجيل الدخول لإنشاء مرشح", "")
		return
	}

	var req dto.CreateCandidateRequest
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

	candidate, err := h.candidates.Create(r.Context(), userID, req)
	if err != nil {
		var ve *models.ValidationError
		switch {
		case errors.Is(err, models.ErrUnauthorized):
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "يجب تسجيل الدخول لإنشاء مرشح", "")
		case errors.As(err, &ve):
			utils.WriteErrorResponse(w, http.StatusBadRequest, ve.Message, ve.Field)
		case errors.Is(err, models.ErrConflict):
			utils.WriteErrorResponse(w, http.StatusConflict, "لديك مرشح مسجل بالفعل", "")
		default:
			slog.Error("create candidate failed", "error", err)
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "فشل في إنشاء المرشح", "")
		}
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.CreateCandidateResponse{
		Candidate: toCandidateResponse(candidate),
	})
}

// List returns every registered candidate
// @Summary List candidates
// @Description Get all registered candidates, newest first, for the public listing table
// @Tags candidates
// @Produce json
// @Success 200 {object} dto.CandidateListResponse "Candidates retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/candidates [get]
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.candidates.GetAll(r.Context())
	if err != nil {
		slog.Error("list candidates failed", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch candidates", "")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.CandidateListResponse{
		Candidates: toCandidateResponses(candidates),
		Total:      len(candidates),
	})
}

// Mine returns the signed-in member's candidates
// @Summary List own candidates
// @Description Get the candidates created by the signed-in member. A non-empty result means the member cannot register another candidate.
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserCandidatesResponse "Candidates retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/candidates/mine [get]
func (h *CandidateHandler) Mine(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "يجب تسجيل الدخول لإرجاع المرشحات", "")
		return
	}

	candidates, err := h.candidates.GetByUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "يجب تسجيل الدخول لإرجاع المرشحات", "")
			return
		}
		slog.Error("list user candidates failed", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch candidates", "")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.UserCandidatesResponse{
		Candidates:   toCandidateResponses(candidates),
		HasCandidate: len(candidates) > 0,
	})
}

// Detail returns one candidate by id
// @Summary Get candidate
// @Description Get a single candidate by id
// @Tags candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} dto.CandidateResponse "Candidate retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/candidates/{id} [get]
func (h *CandidateHandler) Detail(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	candidate, err := h.candidates.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "المرشح غير موجود", "")
			return
		}
		slog.Error("get candidate failed", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch candidate", "")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, toCandidateResponse(candidate))
}

// Update modifies a candidate owned by the signed-in member
// @Summary Update candidate
// @Description Update a candidate. Only the member who created the candidate may update it.
// @Tags candidates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Param request body dto.UpdateCandidateRequest true "Fields to update"
// @Success 200 {object} dto.CandidateResponse "Candidate updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the candidate's creator"
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/candidates/{id} [put]
func (h *CandidateHandler) Update(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "يجب تسجيل الدخول", "")
		return
	}

	var req dto.UpdateCandidateRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	upd := models.CandidateUpdate{
		FullName:  req.FullName,
		Phone:     req.Phone,
		Specialty: req.Specialty,
		Faculty:   req.Faculty,
		Address:   req.Address,
		ImageURL:  req.ImageURL,
	}

	candidate, err := h.candidates.Update(r.Context(), id, userID, upd)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			utils.WriteErrorResponse(w, http.StatusNotFound, "المرشح غير موجود", "")
		case errors.Is(err, models.ErrPermissionDenied):
			utils.WriteErrorResponse(w, http.StatusForbidden, "ليس لديك صلاحية تعديل هذا المرشح", "")
		case errors.Is(err, models.ErrUnauthorized):
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "يجب تسجيل الدخول", "")
		default:
			slog.Error("update candidate failed", "error", err)
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "فشل في تحديث المرشح", "")
		}
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, toCandidateResponse(candidate))
}

// Delete removes a candidate owned by the signed-in member
// @Summary Delete candidate
// @Description Delete a candidate. Only the member who created the candidate may delete it.
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Success 200 {object} dto.MessageResponse "Candidate deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the candidate's creator"
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/candidates/{id} [delete]
func (h *CandidateHandler) Delete(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "يجب تسجيل الدخول لحذف المرشح", "")
		return
	}

	if err := h.candidates.Delete(r.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			utils.WriteErrorResponse(w, http.StatusNotFound, "المرشح غير موجود", "")
		case errors.Is(err, models.ErrPermissionDenied):
			utils.WriteErrorResponse(w, http.StatusForbidden, "ليس لديك صلاحية حذف هذا المرشح", "")
		case errors.Is(err, models.ErrUnauthorized):
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "يجب تسجيل الدخول لحذف المرشح", "")
		default:
			slog.Error("delete candidate failed", "error", err)
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "فشل في حذف المرشح", "")
		}
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "تم حذف المرشح بنجاح"})
}
