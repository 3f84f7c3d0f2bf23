package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/TabularInc/invoice-test-cases-generator/internal/application/service"
	"github.com/TabularInc/invoice-test-cases-generator/pkg/utils"
)

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	svc := service.NewSuiteService(zap.NewNop(), service.Defaults{})
	return NewServer(DefaultServerConfig(), svc, utils.NewKVLogger(zap.NewNop()))
}

func postJSON(t *testing.T, server *Server, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestGenerateSuite(t *testing.T) {
	server := newTestServer()

	rec := postJSON(t, server, "/api/suites", service.GenerateRequest{
		Cases: []service.CaseQuantity{
			{CaseType: "perfect_match", Quantity: 2},
			{CaseType: "fx_loss", Quantity: 1},
		},
		Direction: "receivables",
		StartDate: "2025-03-01",
		EndDate:   "2025-04-30",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Direction string `json:"direction"`
			Cases     []struct {
				CaseType string `json:"case_type"`
			} `json:"cases"`
			CSV string `json:"csv"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "receivables", resp.Data.Direction)
	assert.Len(t, resp.Data.Cases, 3)
	assert.Contains(t, resp.Data.CSV, "date;counterparty;description;amount_eur")
}

func TestGenerateSuite_ClientFaults(t *testing.T) {
	tests := []struct {
		name string
		req  service.GenerateRequest
	}{
		{
			name: "empty case list",
			req: service.GenerateRequest{
				Direction: "payables",
				StartDate: "2025-03-01",
				EndDate:   "2025-04-30",
			},
		},
		{
			name: "end before start",
			req: service.GenerateRequest{
				Cases:     []service.CaseQuantity{{CaseType: "perfect_match", Quantity: 1}},
				Direction: "payables",
				StartDate: "2025-04-30",
				EndDate:   "2025-03-01",
			},
		},
		{
			name: "unknown case type",
			req: service.GenerateRequest{
				Cases:     []service.CaseQuantity{{CaseType: "mystery", Quantity: 1}},
				Direction: "payables",
				StartDate: "2025-03-01",
				EndDate:   "2025-04-30",
			},
		},
	}

	server := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, server, "/api/suites", tt.req)

			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestGenerateSuite_MalformedBody(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/suites", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateBundle(t *testing.T) {
	server := newTestServer()

	rec := postJSON(t, server, "/api/suites/bundle", service.GenerateRequest{
		Cases:     []service.CaseQuantity{{CaseType: "group_payment", Quantity: 1}},
		Direction: "payables",
		StartDate: "2025-03-01",
		EndDate:   "2025-04-30",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, "PK", rec.Body.String()[:2])
}
