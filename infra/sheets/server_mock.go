package sheets

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// ServerMock fakes the spreadsheet values API for tests: worksheets live in
// memory, updates mutate cells in place and appends grow the worksheet. Every
// write is recorded so tests can assert on exactly-once behavior.
type ServerMock struct {
	mu         sync.Mutex
	worksheets map[string][][]string
	updates    []string // updated A1 ranges, in order
	appends    map[string][][]string
	srv        *httptest.Server
}

// NewServerMock starts the mock with the given worksheet contents.
func NewServerMock(worksheets map[string][][]string) *ServerMock {
	m := &ServerMock{
		worksheets: make(map[string][][]string, len(worksheets)),
		appends:    make(map[string][][]string),
	}
	for name, rows := range worksheets {
		copied := make([][]string, len(rows))
		for i, row := range rows {
			copied[i] = append([]string(nil), row...)
		}
		m.worksheets[name] = copied
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/v4/spreadsheets/", m.handleValues)
	m.srv = httptest.NewServer(mux)
	return m
}

// URL returns the mock's base URL for Client's WithBaseURL option.
func (m *ServerMock) URL() string { return m.srv.URL }

// Close shuts the mock server down.
func (m *ServerMock) Close() { m.srv.Close() }

// Rows returns the current contents of a worksheet.
func (m *ServerMock) Rows(worksheet string) [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]string(nil), m.worksheets[worksheet]...)
}

// Updates returns the A1 ranges written so far, in call order.
func (m *ServerMock) Updates() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.updates...)
}

// Appends returns the rows appended to a worksheet.
func (m *ServerMock) Appends(worksheet string) [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]string(nil), m.appends[worksheet]...)
}

func (m *ServerMock) handleValues(w http.ResponseWriter, r *http.Request) {
	// Path: /v4/spreadsheets/{id}/values/{range}[:append]
	parts := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/v4/spreadsheets/"), "/values/", 2)
	if len(parts) != 2 {
		http.NotFound(w, r)
		return
	}
	rangeA1 := parts[1]
	isAppend := strings.HasSuffix(rangeA1, ":append")
	rangeA1 = strings.TrimSuffix(rangeA1, ":append")

	m.mu.Lock()
	defer m.mu.Unlock()
	switch {
	case r.Method == http.MethodGet:
		worksheet := rangeA1
		if i := strings.Index(worksheet, "!"); i >= 0 {
			worksheet = worksheet[:i]
		}
		rows, ok := m.worksheets[worksheet]
		if !ok {
			http.Error(w, `{"error":"worksheet not found"}`, http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"range": rangeA1, "values": rows})
	case r.Method == http.MethodPut:
		var body struct {
			Values [][]string `json:"values"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if !m.applyUpdate(rangeA1, body.Values) {
			http.Error(w, `{"error":"bad range"}`, http.StatusBadRequest)
			return
		}
		m.updates = append(m.updates, rangeA1)
		_ = json.NewEncoder(w).Encode(map[string]any{"updatedRange": rangeA1})
	case r.Method == http.MethodPost && isAppend:
		var body struct {
			Values [][]string `json:"values"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		m.worksheets[rangeA1] = append(m.worksheets[rangeA1], body.Values...)
		m.appends[rangeA1] = append(m.appends[rangeA1], body.Values...)
		_ = json.NewEncoder(w).Encode(map[string]any{"updates": len(body.Values)})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// applyUpdate writes values at an A1 cell reference like "Records!B3". Only
// single-cell column A-Z updates are supported, which covers the client's
// per-athlete writeback.
func (m *ServerMock) applyUpdate(rangeA1 string, values [][]string) bool {
	i := strings.Index(rangeA1, "!")
	if i < 0 || len(values) != 1 || len(values[0]) != 1 {
		return false
	}
	worksheet, cell := rangeA1[:i], rangeA1[i+1:]
	if len(cell) < 2 || cell[0] < 'A' || cell[0] > 'Z' {
		return false
	}
	col := int(cell[0] - 'A')
	row := 0
	for _, ch := range cell[1:] {
		if ch < '0' || ch > '9' {
			return false
		}
		row = row*10 + int(ch-'0')
	}
	rows, ok := m.worksheets[worksheet]
	if !ok || row < 1 || row > len(rows) || col >= len(rows[row-1]) {
		return false
	}
	rows[row-1][col] = values[0][0]
	return true
}
