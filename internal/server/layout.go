package server

import (
	"net/http"

	"github.com/deckforge/deckforge/pkg/pipeline"
)

// handleAnalyzeLayout runs the full layout pipeline on a posted deck
// and returns the analyzed deck as JSON, one layout and element set
// per slide.
func (s *Server) handleAnalyzeLayout(w http.ResponseWriter, r *http.Request) {
	deck, err := pipeline.ReadDeck(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}

	opts := pipeline.Options{
		Theme:   deck.Theme,
		Formats: []string{pipeline.FormatJSON},
		Logger:  s.logger,
	}
	result, err := s.runner.Execute(r.Context(), deck.Slides, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(result.Deck[pipeline.FormatJSON])
}
