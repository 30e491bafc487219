package transport

import (
	"net/http"

	"github.com/rpggio/resiliency/internal/domain/filter"
	"github.com/rpggio/resiliency/internal/domain/technology"
)

type startSessionRequest struct {
	Filters *filter.State `json:"filters,omitempty"`
}

type recordRequest struct {
	ID string `json:"id"`
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeBody(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	initial := filtersFromQuery(r)
	if req.Filters != nil {
		initial = *req.Filters
	}
	sess, err := s.services.Sessions.Start(r.Context(), clientID(r), initial)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeResult(w, http.StatusCreated, sess)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.services.Sessions.Get(r.Context(), clientID(r), pathParam(r, "sessionID"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeResult(w, http.StatusOK, sess)
}

func (s *Server) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Sessions.Close(r.Context(), clientID(r), pathParam(r, "sessionID")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetFilters(w http.ResponseWriter, r *http.Request) {
	// Dimensions absent from the body reset to their defaults.
	state := filter.Default()
	if err := decodeBody(r, &state); err != nil {
		s.fail(w, r, err)
		return
	}
	result, err := s.services.Sessions.SetFilters(r.Context(), clientID(r), pathParam(r, "sessionID"), state)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeResult(w, http.StatusOK, result)
}

func (s *Server) handleClearFilters(w http.ResponseWriter, r *http.Request) {
	result, err := s.services.Sessions.ClearFilters(r.Context(), clientID(r), pathParam(r, "sessionID"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeResult(w, http.StatusOK, result)
}

func (s *Server) handleComparedRecords(w http.ResponseWriter, r *http.Request) {
	views, err := s.services.Sessions.ComparedRecords(r.Context(), clientID(r), pathParam(r, "sessionID"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeResult(w, http.StatusOK, map[string][]technology.View{"records": nonNil(views)})
}

func (s *Server) handleAddToCompare(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := decodeBody(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	result, err := s.services.Sessions.AddToCompare(r.Context(), clientID(r), pathParam(r, "sessionID"), req.ID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeResult(w, http.StatusOK, result)
}

func (s *Server) handleRemoveFromCompare(w http.ResponseWriter, r *http.Request) {
	sess, err := s.services.Sessions.RemoveFromCompare(r.Context(), clientID(r), pathParam(r, "sessionID"), pathParam(r, "recordID"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeResult(w, http.StatusOK, sess)
}

func (s *Server) handleClearCompare(w http.ResponseWriter, r *http.Request) {
	sess, err := s.services.Sessions.ClearCompare(r.Context(), clientID(r), pathParam(r, "sessionID"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeResult(w, http.StatusOK, sess)
}

func (s *Server) handleSelectRecord(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := decodeBody(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	sess, err := s.services.Sessions.SelectRecord(r.Context(), clientID(r), pathParam(r, "sessionID"), req.ID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeResult(w, http.StatusOK, sess)
}

func (s *Server) handleCloseDetails(w http.ResponseWriter, r *http.Request) {
	sess, err := s.services.Sessions.CloseDetails(r.Context(), clientID(r), pathParam(r, "sessionID"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeResult(w, http.StatusOK, sess)
}

func (s *Server) handleToggleDetails(w http.ResponseWriter, r *http.Request) {
	sess, err := s.services.Sessions.ToggleDetails(r.Context(), clientID(r), pathParam(r, "sessionID"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeResult(w, http.StatusOK, sess)
}

func (s *Server) handleSelectInstallation(w http.ResponseWriter, r *http.Request) {
	result, err := s.services.Sessions.SelectInstallation(r.Context(), clientID(r), pathParam(r, "sessionID"), pathParam(r, "name"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeResult(w, http.StatusOK, result)
}
