package services

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/goaltracker/internal/client/client"
	"github.com/dmitrijs2005/goaltracker/internal/client/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalService_List(t *testing.T) {
	goals := []models.Goal{
		{ID: "g1", Title: "Run a marathon", Status: models.GoalStatusActive, Progress: 40},
		{ID: "g2", Title: "Read 12 books", Status: models.GoalStatusCompleted, Progress: 100},
	}

	api := newFakeAPI(t)
	api.router.Get("/goals", requireBearer(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, goals)
	}))

	c, _ := api.newHTTPClient(t, mintToken(t, "u1"))
	res := NewGoalService(c).List(t.Context())

	require.True(t, res.Success)
	assert.Empty(t, res.Error)
	if diff := cmp.Diff(goals, res.Data); diff != "" {
		t.Errorf("goals mismatch (-want +got):\n%s", diff)
	}
}

func TestGoalService_List_Null(t *testing.T) {
	api := newFakeAPI(t)
	api.router.Get("/goals", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, nil)
	})

	c, _ := api.newHTTPClient(t, "tok")
	res := NewGoalService(c).List(t.Context())

	require.True(t, res.Success)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}

func TestGoalService_List_Unauthorized_ClearsToken(t *testing.T) {
	api := newFakeAPI(t)
	api.router.Get("/goals", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Token expired"})
	})

	c, store := api.newHTTPClient(t, "stale")
	res := NewGoalService(c).List(t.Context())

	assert.False(t, res.Success)
	assert.Equal(t, client.MsgUnauthorized, res.Error)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)

	token, err := store.Token(t.Context())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestGoalService_Unreachable(t *testing.T) {
	api := newFakeAPI(t)
	c, _ := api.newHTTPClient(t, "tok")
	api.server.Close()

	res := NewGoalService(c).List(t.Context())

	assert.False(t, res.Success)
	assert.Equal(t, client.MsgNetwork, res.Error)
	assert.Empty(t, res.Data)
}

func TestGoalService_Get_NotFound(t *testing.T) {
	api := newFakeAPI(t)
	api.router.Get("/goals/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	c, _ := api.newHTTPClient(t, "tok")
	res := NewGoalService(c).Get(t.Context(), "missing")

	assert.False(t, res.Success)
	assert.Equal(t, client.MsgNotFound, res.Error)
	assert.Nil(t, res.Data)
}

func TestGoalService_Get_NotFoundWithServerText(t *testing.T) {
	api := newFakeAPI(t)
	api.router.Get("/goals/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Goal not found"})
	})

	c, _ := api.newHTTPClient(t, "tok")
	res := NewGoalService(c).Get(t.Context(), "missing")

	assert.False(t, res.Success)
	assert.Equal(t, "Goal not found", res.Error)
}

func TestGoalService_CreateUpdate(t *testing.T) {
	api := newFakeAPI(t)
	api.router.Post("/goals", func(w http.ResponseWriter, r *http.Request) {
		var in models.GoalInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		writeJSON(w, http.StatusCreated, models.Goal{ID: "g1", Title: in.Title, Category: in.Category})
	})
	api.router.Put("/goals/{id}", func(w http.ResponseWriter, r *http.Request) {
		var in models.GoalInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		writeJSON(w, http.StatusOK, models.Goal{ID: chi.URLParam(r, "id"), Title: in.Title})
	})

	c, _ := api.newHTTPClient(t, "tok")
	svc := NewGoalService(c)

	created := svc.Create(t.Context(), models.GoalInput{Title: "Learn Go", Category: "education"})
	require.True(t, created.Success)
	assert.Equal(t, &models.Goal{ID: "g1", Title: "Learn Go", Category: "education"}, created.Data)

	updated := svc.Update(t.Context(), "g1", models.GoalInput{Title: "Learn Go well"})
	require.True(t, updated.Success)
	assert.Equal(t, "g1", updated.Data.ID)
	assert.Equal(t, "Learn Go well", updated.Data.Title)
}

func TestGoalService_Create_ValidationError(t *testing.T) {
	api := newFakeAPI(t)
	api.router.Post("/goals", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Title is required"})
	})

	c, _ := api.newHTTPClient(t, "tok")
	res := NewGoalService(c).Create(t.Context(), models.GoalInput{})

	assert.False(t, res.Success)
	assert.Equal(t, "Title is required", res.Error)
}

func TestGoalService_UpdateProgress(t *testing.T) {
	api := newFakeAPI(t)
	api.router.Patch("/goals/{id}/progress", func(w http.ResponseWriter, r *http.Request) {
		var in models.ProgressUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		writeJSON(w, http.StatusOK, models.Goal{ID: chi.URLParam(r, "id"), Progress: in.Progress})
	})

	c, _ := api.newHTTPClient(t, "tok")
	res := NewGoalService(c).UpdateProgress(t.Context(), "g1", 75)

	require.True(t, res.Success)
	assert.Equal(t, 75, res.Data.Progress)
}

func TestGoalService_Delete(t *testing.T) {
	api := newFakeAPI(t)
	api.router.Delete("/goals/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	c, _ := api.newHTTPClient(t, "tok")
	res := NewGoalService(c).Delete(t.Context(), "g1")

	assert.True(t, res.Success)
	assert.Empty(t, res.Error)
}

func TestGoalService_Delete_ServerError(t *testing.T) {
	api := newFakeAPI(t)
	api.router.Delete("/goals/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	c, _ := api.newHTTPClient(t, "tok")
	res := NewGoalService(c).Delete(t.Context(), "g1")

	assert.False(t, res.Success)
	assert.Equal(t, client.MsgServer, res.Error)
}
