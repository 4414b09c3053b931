package importer

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"Civilcalc/internal/calc/registry"
	"Civilcalc/internal/calc/sieve"
	"Civilcalc/internal/grading"

	"github.com/gorilla/mux"
)

const maxUpload = 10 << 20

type Handler struct {
	Catalog *grading.Catalog
}

func upload(w http.ResponseWriter, r *http.Request) (io.ReadCloser, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return nil, false
	}
	return file, true
}

// Trials evaluates every row of an uploaded trial sheet.
func (h *Handler) Trials(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := registry.Lookup(id); !ok {
		http.Error(w, "Calculator not found", http.StatusNotFound)
		return
	}
	file, ok := upload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	trials, err := ReadTrials(file)
	if err != nil {
		log.Printf("import trials for %s: %v", id, err)
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	res, err := registry.EvaluateTrials(id, trials)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	writeJSON(w, res)
}

// Retained analyzes an uploaded sieve sheet against one grading table.
func (h *Handler) Retained(w http.ResponseWriter, r *http.Request) {
	t, ok := h.Catalog.Get(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Grading table not found", http.StatusNotFound)
		return
	}
	file, ok := upload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	in, err := ReadRetained(file)
	if err != nil {
		log.Printf("import sieve weights for %s: %v", t.ID, err)
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	writeJSON(w, sieve.Analyze(t, in))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
