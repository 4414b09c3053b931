package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"Civilcalc/internal/auth"
	"Civilcalc/internal/calc/registry"
	"Civilcalc/internal/calc/sieve"
	"Civilcalc/internal/grading"
	"Civilcalc/internal/numeric"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog *grading.Catalog
}

type CalculatorRequest struct {
	Meta
	Fields numeric.Fields `json:"fields"`
}

type GradationRequest struct {
	Meta
	sieve.Input
}

func (h *Handler) Calculator(w http.ResponseWriter, r *http.Request) {
	c, ok := registry.Lookup(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Calculator not found", http.StatusNotFound)
		return
	}
	var input CalculatorRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	input.Meta = requestMeta(r, input.Meta)

	var buf bytes.Buffer
	if err := Calculator(&buf, c, input.Fields, c.Evaluate(input.Fields), input.Meta); err != nil {
		log.Printf("render %s report: %v", c.ID, err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	writePDF(w, c.ID, buf.Bytes())
}

func (h *Handler) Gradation(w http.ResponseWriter, r *http.Request) {
	t, ok := h.Catalog.Get(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Grading table not found", http.StatusNotFound)
		return
	}
	var input GradationRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	input.Meta = requestMeta(r, input.Meta)

	var buf bytes.Buffer
	if err := Gradation(&buf, sieve.Analyze(t, input.Input), input.Meta); err != nil {
		log.Printf("render %s report: %v", t.ID, err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	writePDF(w, t.ID, buf.Bytes())
}

// requestMeta stamps the date and, when no author is given, uses the token subject.
func requestMeta(r *http.Request, m Meta) Meta {
	m.Date = time.Now().Format("2006-01-02")
	if strings.TrimSpace(m.Author) == "" {
		if subject, ok := auth.Subject(r.Context()); ok {
			m.Author = subject
		}
	}
	return m
}

func writePDF(w http.ResponseWriter, name string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".pdf"))
	if _, err := w.Write(data); err != nil {
		log.Printf("write report: %v", err)
	}
}
