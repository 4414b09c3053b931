package sieve

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Civilcalc/internal/grading"

	"github.com/gorilla/mux"
)

type analysisBody struct {
	TotalWeight *float64 `json:"total_weight"`
	Rows        []struct {
		Size           string   `json:"size"`
		PercentPassing *float64 `json:"percent_passing"`
		Status         string   `json:"status"`
		Corrupt        bool     `json:"corrupt"`
	} `json:"rows"`
	Summary struct {
		Computed  bool `json:"computed"`
		Passed    int  `json:"passed"`
		Failed    int  `json:"failed"`
		Compliant bool `json:"compliant"`
	} `json:"summary"`
}

func newRouterForTest(t *testing.T) *mux.Router {
	t.Helper()
	c, err := grading.Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	h := &Handler{Catalog: c}
	r := mux.NewRouter()
	r.HandleFunc("/api/gradings", h.List).Methods(http.MethodGet)
	r.HandleFunc("/api/gradings/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/gradings/{id}/calc", h.Calc).Methods(http.MethodPost)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestCalcSlurrySeal(t *testing.T) {
	r := newRouterForTest(t)
	body := `{"total_weight": "1000", "retained": {
		"9.5 mm": 0, "4.75 mm": "50", "2.36 mm": 200, "1.18 mm": 200,
		"0.600 mm": 150, "0.300 mm": 150, "0.150 mm": 80, "0.075 mm": 70}}`
	rr := do(t, r, http.MethodPost, "/api/gradings/slurry-seal-2/calc", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	var got analysisBody
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	wantPassing := []float64{100, 95, 75, 55, 40, 25, 17, 10}
	if len(got.Rows) != len(wantPassing) {
		t.Fatalf("expected %d rows, got %d", len(wantPassing), len(got.Rows))
	}
	for i, row := range got.Rows {
		if row.PercentPassing == nil || *row.PercentPassing != wantPassing[i] {
			t.Fatalf("row %s passing=%v want %v", row.Size, row.PercentPassing, wantPassing[i])
		}
		if row.Status != "pass" {
			t.Fatalf("row %s status=%q", row.Size, row.Status)
		}
	}
	if !got.Summary.Computed || !got.Summary.Compliant || got.Summary.Passed != 8 {
		t.Fatalf("summary=%+v", got.Summary)
	}
	if got.TotalWeight == nil || *got.TotalWeight != 1000 {
		t.Fatalf("total_weight=%v", got.TotalWeight)
	}
}

func TestCalcWithoutTotalReturnsNulls(t *testing.T) {
	r := newRouterForTest(t)
	rr := do(t, r, http.MethodPost, "/api/gradings/sma-13/calc", `{"total_weight": "", "retained": {"19 mm": 10}}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d", rr.Code)
	}
	var got analysisBody
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.TotalWeight != nil || got.Summary.Computed {
		t.Fatalf("unexpected result %+v", got)
	}
	for _, row := range got.Rows {
		if row.PercentPassing != nil || row.Status != "" {
			t.Fatalf("row %s should carry no result", row.Size)
		}
	}
}

func TestCalcCorruptWeightOnSMA(t *testing.T) {
	r := newRouterForTest(t)
	rr := do(t, r, http.MethodPost, "/api/gradings/sma-13/calc", `{"total_weight": 1000, "retained": {"13.2 mm": "abc"}}`)
	var got analysisBody
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	row := got.Rows[1]
	if !row.Corrupt || row.Status != "fail" || row.PercentPassing == nil || *row.PercentPassing != 100 {
		t.Fatalf("row=%+v", row)
	}
}

func TestHandlerErrors(t *testing.T) {
	r := newRouterForTest(t)
	if rr := do(t, r, http.MethodPost, "/api/gradings/unknown/calc", `{}`); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown table status=%d", rr.Code)
	}
	if rr := do(t, r, http.MethodGet, "/api/gradings/unknown", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown table status=%d", rr.Code)
	}
	if rr := do(t, r, http.MethodPost, "/api/gradings/sma-13/calc", `{"retained": [`); rr.Code != http.StatusBadRequest {
		t.Fatalf("bad body status=%d", rr.Code)
	}
}

func TestListAndGet(t *testing.T) {
	r := newRouterForTest(t)
	rr := do(t, r, http.MethodGet, "/api/gradings", "")
	var tables []grading.Table
	if err := json.Unmarshal(rr.Body.Bytes(), &tables); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(tables) != 5 {
		t.Fatalf("expected 5 tables, got %d", len(tables))
	}
	rr = do(t, r, http.MethodGet, "/api/gradings/sma-19", "")
	var tbl grading.Table
	if err := json.Unmarshal(rr.Body.Bytes(), &tbl); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tbl.ID != "sma-19" || tbl.Standard != "MORTH Table 500-37" {
		t.Fatalf("table=%+v", tbl)
	}
}
