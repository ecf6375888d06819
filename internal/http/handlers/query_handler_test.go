// README: Query history and profile handler tests.
package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"safar/internal/modules/queries"
)

type fakeHistory struct {
	recent      []queries.TravelQuery
	lastLimit   int
	lastProfile *queries.UserProfile
}

func (f *fakeHistory) RecentQueries(ctx context.Context, limit int) ([]queries.TravelQuery, error) {
	f.lastLimit = limit
	return f.recent, nil
}

func (f *fakeHistory) SaveProfile(ctx context.Context, p *queries.UserProfile) error {
	f.lastProfile = p
	p.ID = 7
	return nil
}

func newQueryRouter(store HistoryStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewQueryHandler(store)
	r.GET("/api/queries/history", h.History)
	r.POST("/api/user/profile", h.CreateProfile)
	return r
}

func TestHistory_DefaultLimit(t *testing.T) {
	store := &fakeHistory{}
	r := newQueryRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/queries/history", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if store.lastLimit != 20 {
		t.Errorf("limit = %d, want 20", store.lastLimit)
	}
	if !strings.Contains(w.Body.String(), `"queries":[]`) {
		t.Errorf("empty history must marshal to an empty array, body = %s", w.Body.String())
	}
}

func TestHistory_LimitBounds(t *testing.T) {
	for _, tc := range []struct {
		param string
		want  int
	}{
		{"5", 5},
		{"100", 100},
		{"0", 20},
		{"500", 20},
		{"abc", 20},
	} {
		t.Run(tc.param, func(t *testing.T) {
			store := &fakeHistory{}
			r := newQueryRouter(store)

			req := httptest.NewRequest(http.MethodGet, "/api/queries/history?limit="+tc.param, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if store.lastLimit != tc.want {
				t.Errorf("limit = %d, want %d", store.lastLimit, tc.want)
			}
		})
	}
}

func TestCreateProfile_StampsCreationTime(t *testing.T) {
	store := &fakeHistory{}
	r := newQueryRouter(store)

	w := postJSON(t, r, "/api/user/profile", `{"gender": "female", "travel_group": "family"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	p := store.lastProfile
	if p == nil {
		t.Fatal("profile never reached the store")
	}
	if p.Gender != "female" || p.TravelGroup != "family" {
		t.Errorf("profile = %+v", p)
	}
	if p.CreatedAt.IsZero() {
		t.Error("CreatedAt handed to the store is the zero time")
	}
	if strings.Contains(w.Body.String(), "0001-01-01") {
		t.Errorf("response carries a zero timestamp: %s", w.Body.String())
	}
}

func TestCreateProfile_InvalidJSON(t *testing.T) {
	r := newQueryRouter(&fakeHistory{})
	w := postJSON(t, r, "/api/user/profile", `{"gender": `)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
