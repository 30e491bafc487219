package transport

import (
	"net/http"

	"github.com/rpggio/resiliency/internal/catalog"
	"github.com/rpggio/resiliency/internal/domain/filter"
)

type linkResponse struct {
	Link  string `json:"link"`
	Query string `json:"query"`
}

func (s *Server) handleListTechnologies(w http.ResponseWriter, r *http.Request) {
	key, dir, err := recordSort(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	result := s.services.Catalog.Filter(catalog.Query{
		Filters: filtersFromQuery(r),
		Sort:    key,
		Dir:     dir,
	})
	writeResult(w, http.StatusOK, result)
}

func (s *Server) handleGetTechnology(w http.ResponseWriter, r *http.Request) {
	view, err := s.services.Catalog.Get(pathParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeResult(w, http.StatusOK, view)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	results, err := s.services.Catalog.Search(r.Context(), r.URL.Query().Get("q"), intParam(r.URL.Query(), "limit"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if results == nil {
		results = []catalog.SearchResult{}
	}
	writeResult(w, http.StatusOK, map[string]any{"results": results})
}

func (s *Server) handleOptions(w http.ResponseWriter, _ *http.Request) {
	writeResult(w, http.StatusOK, s.services.Catalog.FilterOptions())
}

func (s *Server) handleLink(w http.ResponseWriter, r *http.Request) {
	state := filtersFromQuery(r)
	link := s.services.Catalog.Link(state)
	writeResult(w, http.StatusOK, linkResponse{Link: link, Query: filter.Encode(state.Normalize())})
}

func (s *Server) handleListInstallations(w http.ResponseWriter, r *http.Request) {
	key, dir, err := summarySort(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeResult(w, http.StatusOK, map[string]any{"installations": s.services.Catalog.Installations(key, dir)})
}

func (s *Server) handleGapToGreen(w http.ResponseWriter, r *http.Request) {
	key, dir, err := recommendationSort(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	plan, err := s.services.Catalog.GapToGreen(pathParam(r, "name"), key, dir)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeResult(w, http.StatusOK, plan)
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	writeResult(w, http.StatusOK, map[string]any{"markers": s.services.Catalog.Markers(filtersFromQuery(r))})
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	writeResult(w, http.StatusOK, s.services.Catalog.Analytics(filtersFromQuery(r)))
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	entries, err := s.services.Activity.GetRecentActivity(r.Context(), clientID(r), activityOptions(r))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeResult(w, http.StatusOK, map[string]any{"entries": nonNil(entries)})
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
