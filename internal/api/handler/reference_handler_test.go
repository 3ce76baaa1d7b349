package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/yaparim/marketplace/internal/core/domain"
)

type stubStatsService struct {
	stats *domain.Stats
	err   error
}

func (s stubStatsService) Stats(context.Context) (*domain.Stats, error) { return s.stats, s.err }

func TestReferenceHandler_Catalogs(t *testing.T) {
	e := newTestEcho()
	h := NewReferenceHandler(domain.NewCatalog([]string{"Ankara", "İzmir"}, []string{"Temizlik"}), stubStatsService{})

	c, rec := newJSONContext(e, http.MethodGet, "/api/cities", "")
	if err := h.Cities(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var cities citiesResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &cities)
	if len(cities.Cities) != 2 || cities.Cities[1] != "İzmir" {
		t.Fatalf("unexpected cities %+v", cities)
	}

	c, rec = newJSONContext(e, http.MethodGet, "/api/categories", "")
	if err := h.Categories(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var cats categoriesResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &cats)
	if len(cats.Categories) != 1 || cats.Categories[0] != "Temizlik" {
		t.Fatalf("unexpected categories %+v", cats)
	}

	c, rec = newJSONContext(e, http.MethodGet, "/", "")
	if err := h.Root(c); err != nil || rec.Code != http.StatusOK {
		t.Fatalf("unexpected banner response %d %v", rec.Code, err)
	}
}

func TestReferenceHandler_Stats(t *testing.T) {
	e := newTestEcho()
	h := NewReferenceHandler(domain.DefaultCatalog(), stubStatsService{
		stats: &domain.Stats{TotalTasks: 4, ActiveTasks: 3, TotalUsers: 2, TotalApplications: 1},
	})

	c, rec := newJSONContext(e, http.MethodGet, "/api/stats", "")
	if err := h.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]int
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["total_tasks"] != 4 || resp["active_tasks"] != 3 || resp["total_users"] != 2 || resp["total_applications"] != 1 {
		t.Fatalf("unexpected stats %v", resp)
	}
}
