package registry

import (
	"encoding/json"
	"log"
	"net/http"

	"Civilcalc/internal/numeric"

	"github.com/gorilla/mux"
)

type Handler struct{}

type CalcRequest struct {
	Fields numeric.Fields `json:"fields"`
}

type TrialsRequest struct {
	Trials []numeric.Fields `json:"trials"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, List())
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	c, ok := Lookup(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Calculator not found", http.StatusNotFound)
		return
	}
	writeJSON(w, c)
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	c, ok := Lookup(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Calculator not found", http.StatusNotFound)
		return
	}
	var input CalcRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	writeJSON(w, c.Evaluate(input.Fields))
}

func (h *Handler) Trials(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := Lookup(id); !ok {
		http.Error(w, "Calculator not found", http.StatusNotFound)
		return
	}
	var input TrialsRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := EvaluateTrials(id, input.Trials)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	writeJSON(w, res)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
