package server

import (
	"encoding/json"
	"net/http"

	"github.com/poiesic/evidex/query"
)

// handleSearch answers a search request. Bad JSON is a 400; search failures
// are a generic 500.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req query.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.search.Search(r.Context(), &req)
	if err != nil {
		s.logger.Error("error executing search", "text", req.SearchText, "err", err)
		s.writeError(w, http.StatusInternalServerError, "An error occurred while searching. Please contact the administrator.")
		return
	}

	s.writeJSON(w, http.StatusOK, resp)
}
