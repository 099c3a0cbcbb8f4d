package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"UGEM_BACK-END/internal/dto"
	"UGEM_BACK-END/internal/models"
	"UGEM_BACK-END/internal/service"
	"UGEM_BACK-END/internal/utils"
	"UGEM_BACK-END/internal/validation"
)

type memCandidateStore struct {
	candidates map[uuid.UUID]models.Candidate
}

func newMemCandidateStore() *memCandidateStore {
	return &memCandidateStore{candidates: make(map[uuid.UUID]models.Candidate)}
}

func (s *memCandidateStore) Create(ctx context.Context, c models.Candidate) error {
	s.candidates[c.ID] = c
	return nil
}

func (s *memCandidateStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	c, ok := s.candidates[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &c, nil
}

func (s *memCandidateStore) ListAll(ctx context.Context) ([]models.Candidate, error) {
	out := make([]models.Candidate, 0, len(s.candidates))
	for _, c := range s.candidates {
		out = append(out, c)
	}
	return out, nil
}

func (s *memCandidateStore) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.Candidate, error) {
	out := []models.Candidate{}
	for _, c := range s.candidates {
		if c.CreatorID == creatorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memCandidateStore) Update(ctx context.Context, id, creatorID uuid.UUID, upd models.CandidateUpdate) (*models.Candidate, error) {
	c, ok := s.candidates[id]
	if !ok || c.CreatorID != creatorID {
		return nil, models.ErrNotFound
	}
	if upd.FullName != nil {
		c.FullName = *upd.FullName
	}
	if upd.Phone != nil {
		c.Phone = *upd.Phone
	}
	if upd.Specialty != nil {
		c.Specialty = *upd.Specialty
	}
	if upd.Faculty != nil {
		c.Faculty = *upd.Faculty
	}
	if upd.Address != nil {
		c.Address = *upd.Address
	}
	if upd.ImageURL != nil {
		c.ImageURL = upd.ImageURL
	}
	s.candidates[id] = c
	return &c, nil
}

func (s *memCandidateStore) Delete(ctx context.Context, id, creatorID uuid.UUID) error {
	c, ok := s.candidates[id]
	if !ok || c.CreatorID != creatorID {
		return models.ErrNotFound
	}
	delete(s.candidates, id)
	return nil
}

func newCandidateHandler() (*CandidateHandler, *memCandidateStore) {
	store := newMemCandidateStore()
	return NewCandidateHandler(service.NewCandidateService(store), validation.New()), store
}

func candidateBody() []byte {
	b, _ := json.Marshal(dto.CreateCandidateRequest{
		FullName:  "محمد أحمد علي",
		Phone:     "55123456",
		Specialty: "هندسة البرمجيات",
		Faculty:   "كلية العلوم والتقنيات",
		Address:   "حي النصر",
	})
	return b
}

func authedRequest(method, target string, body []byte, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx := utils.WithUserID(req.Context(), userID)
	return req.WithContext(ctx)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestCreateCandidateEndpoint(t *testing.T) {
	t.Run("creates candidate", func(t *testing.T) {
		h, store := newCandidateHandler()
		rec := httptest.NewRecorder()

		h.Create(rec, authedRequest(http.MethodPost, "/api/candidates", candidateBody(), uuid.New()))

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp dto.CreateCandidateResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "محمد أحمد علي", resp.Candidate.FullName)
		assert.Len(t, store.candidates, 1)
	})

	t.Run("rejects anonymous caller and writes nothing", func(t *testing.T) {
		h, store := newCandidateHandler()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/candidates", bytes.NewReader(candidateBody()))

		h.Create(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "يجب تسجيل الدخول لإنشاء مرشح", decodeError(t, rec).Error)
		assert.Empty(t, store.candidates)
	})

	t.Run("second candidate for same member conflicts", func(t *testing.T) {
		h, store := newCandidateHandler()
		member := uuid.New()

		rec := httptest.NewRecorder()
		h.Create(rec, authedRequest(http.MethodPost, "/api/candidates", candidateBody(), member))
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = httptest.NewRecorder()
		h.Create(rec, authedRequest(http.MethodPost, "/api/candidates", candidateBody(), member))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Len(t, store.candidates, 1)
	})

	t.Run("validation failure returns Arabic field message", func(t *testing.T) {
		h, _ := newCandidateHandler()

		body, _ := json.Marshal(dto.CreateCandidateRequest{
			FullName:  "محمد أحمد علي",
			Phone:     "1234",
			Specialty: "هندسة",
			Faculty:   "كلية العلوم",
			Address:   "حي النصر",
		})

		rec := httptest.NewRecorder()
		h.Create(rec, authedRequest(http.MethodPost, "/api/candidates", body, uuid.New()))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "يجب أن يتكون رقم الهاتف من 8 أرقام", decodeError(t, rec).Error)
	})
}

func TestUpdateCandidateEndpoint(t *testing.T) {
	h, _ := newCandidateHandler()
	owner := uuid.New()

	rec := httptest.NewRecorder()
	h.Create(rec, authedRequest(http.MethodPost, "/api/candidates", candidateBody(), owner))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created dto.CreateCandidateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	candidateID := created.Candidate.ID

	updateBody, _ := json.Marshal(map[string]string{"full_name": "سارة خالد"})

	t.Run("non-owner gets permission error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleItem(rec, authedRequest(http.MethodPut, "/api/candidates/"+candidateID, updateBody, uuid.New()))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "ليس لديك صلاحية تعديل هذا المرشح", decodeError(t, rec).Error)
	})

	t.Run("missing candidate reports not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleItem(rec, authedRequest(http.MethodPut, "/api/candidates/"+uuid.NewString(), updateBody, owner))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "المرشح غير موجود", decodeError(t, rec).Error)
	})

	t.Run("owner updates successfully", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleItem(rec, authedRequest(http.MethodPut, "/api/candidates/"+candidateID, updateBody, owner))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.CandidateResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "سارة خالد", resp.FullName)
		assert.Equal(t, "55123456", resp.Phone)
	})

	t.Run("invalid id is a bad request", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleItem(rec, authedRequest(http.MethodPut, "/api/candidates/not-a-uuid", updateBody, owner))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteCandidateEndpoint(t *testing.T) {
	h, store := newCandidateHandler()
	owner := uuid.New()

	rec := httptest.NewRecorder()
	h.Create(rec, authedRequest(http.MethodPost, "/api/candidates", candidateBody(), owner))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created dto.CreateCandidateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	candidateID := created.Candidate.ID

	t.Run("non-owner gets permission error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleItem(rec, authedRequest(http.MethodDelete, "/api/candidates/"+candidateID, nil, uuid.New()))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "ليس لديك صلاحية حذف هذا المرشح", decodeError(t, rec).Error)
		assert.Len(t, store.candidates, 1)
	})

	t.Run("owner deletes successfully", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleItem(rec, authedRequest(http.MethodDelete, "/api/candidates/"+candidateID, nil, owner))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, store.candidates)
	})
}

func TestListAndMineEndpoints(t *testing.T) {
	h, _ := newCandidateHandler()
	member := uuid.New()

	rec := httptest.NewRecorder()
	h.Create(rec, authedRequest(http.MethodPost, "/api/candidates", candidateBody(), member))
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("public listing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.List(rec, httptest.NewRequest(http.MethodGet, "/api/candidates", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.CandidateListResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, 1, resp.Total)
		require.Len(t, resp.Candidates, 1)
	})

	t.Run("mine reports has_candidate", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Mine(rec, authedRequest(http.MethodGet, "/api/candidates/mine", nil, member))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.UserCandidatesResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.HasCandidate)
		assert.Len(t, resp.Candidates, 1)
	})

	t.Run("mine is empty for another member", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Mine(rec, authedRequest(http.MethodGet, "/api/candidates/mine", nil, uuid.New()))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.UserCandidatesResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.False(t, resp.HasCandidate)
		assert.Empty(t, resp.Candidates)
	})
}

func TestCandidateDetailEndpoint(t *testing.T) {
	h, _ := newCandidateHandler()
	member := uuid.New()

	rec := httptest.NewRecorder()
	h.Create(rec, authedRequest(http.MethodPost, "/api/candidates", candidateBody(), member))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created dto.CreateCandidateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))

	rec = httptest.NewRecorder()
	h.HandleItem(rec, httptest.NewRequest(http.MethodGet, "/api/candidates/"+created.Candidate.ID, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.CandidateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, created.Candidate.ID, resp.ID)
	assert.Equal(t, "محمد أحمد علي", resp.FullName)
}
