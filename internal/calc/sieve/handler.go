package sieve

import (
	"encoding/json"
	"log"
	"net/http"

	"Civilcalc/internal/grading"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog *grading.Catalog
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Catalog.List())
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	t, ok := h.Catalog.Get(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Grading table not found", http.StatusNotFound)
		return
	}
	writeJSON(w, t)
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	t, ok := h.Catalog.Get(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Grading table not found", http.StatusNotFound)
		return
	}
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	writeJSON(w, Analyze(t, input))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
