package transport

import (
	"net/http"
)

type saveNoteRequest struct {
	Text string `json:"text"`
}

type onboardingResponse struct {
	HasSeenOnboarding bool `json:"hasSeenOnboarding"`
}

func (s *Server) handleGetNote(w http.ResponseWriter, r *http.Request) {
	note, err := s.services.Notes.GetNote(r.Context(), clientID(r), pathParam(r, "recordID"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeResult(w, http.StatusOK, note)
}

func (s *Server) handleSaveNote(w http.ResponseWriter, r *http.Request) {
	var req saveNoteRequest
	if err := decodeBody(r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	note, err := s.services.Notes.SaveNote(r.Context(), clientID(r), pathParam(r, "recordID"), req.Text)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeResult(w, http.StatusOK, note)
}

func (s *Server) handleGetOnboarding(w http.ResponseWriter, r *http.Request) {
	seen, err := s.services.Notes.HasSeenOnboarding(r.Context(), clientID(r))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeResult(w, http.StatusOK, onboardingResponse{HasSeenOnboarding: seen})
}

func (s *Server) handleMarkOnboarding(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Notes.MarkOnboardingSeen(r.Context(), clientID(r)); err != nil {
		s.fail(w, r, err)
		return
	}
	writeResult(w, http.StatusOK, onboardingResponse{HasSeenOnboarding: true})
}
