package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/abdullah3034/portfolio-api/internal/education"
)

func newEducationRouter(repo education.Repository, auth gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	api := r.Group("/api")
	RegisterEducation(api, repo, auth)
	return r
}

func TestEducationCreateAndList(t *testing.T) {
	repo := education.NewMemoryRepository()
	r := newEducationRouter(repo, allowAuth)

	w := doJSON(t, r, http.MethodPost, "/api/education", map[string]any{
		"institution": "State University",
		"degree":      "BSc Computer Science",
		"startDate":   "2018-09-01",
		"endDate":     "2022-06-15",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)
	require.Equal(t, "State University", created["institution"])
	require.NotEmpty(t, created["id"])

	w = doJSON(t, r, http.MethodGet, "/api/education", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []education.Education
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Equal(t, 2018, list[0].StartDate.Year())
	require.NotNil(t, list[0].EndDate)
}

func TestEducationAcceptsRFC3339Dates(t *testing.T) {
	repo := education.NewMemoryRepository()
	r := newEducationRouter(repo, allowAuth)

	w := doJSON(t, r, http.MethodPost, "/api/education", map[string]any{
		"institution": "Tech Institute",
		"degree":      "MSc",
		"startDate":   "2022-09-01T00:00:00Z",
		"current":     true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)
	require.Equal(t, true, created["current"])
}

func TestEducationRejectsBadDate(t *testing.T) {
	repo := education.NewMemoryRepository()
	r := newEducationRouter(repo, allowAuth)

	w := doJSON(t, r, http.MethodPost, "/api/education", map[string]any{
		"institution": "State University",
		"degree":      "BSc",
		"startDate":   "September 2018",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, decodeBody(t, w), "errors")
	require.Equal(t, 0, repo.Len())
}

func TestEducationPartialUpdate(t *testing.T) {
	repo := education.NewMemoryRepository()
	ctx := context.Background()
	start := time.Date(2018, 9, 1, 0, 0, 0, 0, time.UTC)
	rec := &education.Education{Institution: "State University", Degree: "BSc", StartDate: start, Current: true}
	require.NoError(t, repo.Create(ctx, rec))
	r := newEducationRouter(repo, allowAuth)

	w := doJSON(t, r, http.MethodPut, "/api/education/"+rec.ID.Hex(), map[string]any{
		"endDate": "2022-06-15",
		"current": false,
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody(t, w)
	require.Equal(t, false, updated["current"])
	require.Equal(t, "State University", updated["institution"])
	require.NotEmpty(t, updated["endDate"])
}

func TestEducationMutationsRequireAuth(t *testing.T) {
	repo := education.NewMemoryRepository()
	r := newEducationRouter(repo, denyAuth)

	w := doJSON(t, r, http.MethodPost, "/api/education", map[string]any{
		"institution": "State University",
		"degree":      "BSc",
		"startDate":   "2018-09-01",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, 0, repo.Len())
}

func TestEducationDeleteNotFound(t *testing.T) {
	repo := education.NewMemoryRepository()
	r := newEducationRouter(repo, allowAuth)

	w := doJSON(t, r, http.MethodDelete, "/api/education/64f000000000000000000000", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Education record not found", decodeBody(t, w)["message"])
}
