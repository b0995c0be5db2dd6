package httptransport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	consentModel "cmbridge/internal/consent/models"
	"cmbridge/internal/platform/logger"
	"cmbridge/internal/transport/http/mocks"
	dErrors "cmbridge/pkg/domain-errors"
)

//go:generate mockgen -source=handlers_consent.go -destination=mocks/bridge-mocks.go -package=mocks BridgeService

func newTestHandler(t *testing.T) (*ConsentHandler, *mocks.MockBridgeService, chi.Router) {
	t.Helper()
	ctrl := gomock.NewController(t)
	bridge := mocks.NewMockBridgeService(ctrl)
	handler := NewConsentHandler(bridge, logger.New())
	router := chi.NewRouter()
	handler.Register(router)
	return handler, bridge, router
}

func TestConsentHandler_handleUserStatus_HappyPath(t *testing.T) {
	_, bridge, router := newTestHandler(t)

	bridge.EXPECT().
		GetUserStatus(gomock.Any()).
		Return(consentModel.UserStatus{
			Status:     consentModel.StatusGranted,
			Vendors:    map[string]consentModel.ConsentStatus{"s2789": consentModel.StatusGranted},
			Purposes:   map[string]consentModel.ConsentStatus{"c52": consentModel.StatusDenied},
			TCF:        "CPc9TkAPc9TkA",
			Regulation: consentModel.RegulationGDPR,
		}, nil).
		Times(1)

	req := httptest.NewRequest("GET", "/consent/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got consentModel.UserStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, consentModel.StatusGranted, got.Status)
	assert.Equal(t, consentModel.StatusDenied, got.Purposes["c52"])
	assert.Equal(t, consentModel.RegulationGDPR, got.Regulation)
}

func TestConsentHandler_handleConsentRequired(t *testing.T) {
	_, bridge, router := newTestHandler(t)

	bridge.EXPECT().IsConsentRequired(gomock.Any()).Return(true, nil).Times(1)

	req := httptest.NewRequest("GET", "/consent/required", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"required":true}`, w.Body.String())
}

func TestConsentHandler_handlePurposeStatus_PathParam(t *testing.T) {
	_, bridge, router := newTestHandler(t)

	bridge.EXPECT().
		GetStatusForPurpose(gomock.Any(), "c53").
		Return(consentModel.StatusChoiceUnknown, nil).
		Times(1)

	req := httptest.NewRequest("GET", "/consent/purposes/c53", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"choiceUnknown"}`, w.Body.String())
}

func TestConsentHandler_handleVendorStatus_NativeFailure(t *testing.T) {
	_, bridge, router := newTestHandler(t)

	bridge.EXPECT().
		GetStatusForVendor(gomock.Any(), "s2790").
		Return(consentModel.StatusChoiceUnknown, dErrors.New(dErrors.CodeNativeSDK, "consent layer not initialized")).
		Times(1)

	req := httptest.NewRequest("GET", "/consent/vendors/s2790", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, string(dErrors.CodeNativeSDK), body["error"])
	assert.Equal(t, "consent layer not initialized", body["error_description"])
}

func TestConsentHandler_handleExport(t *testing.T) {
	_, bridge, router := newTestHandler(t)

	bridge.EXPECT().ExportCMPInfo(gomock.Any()).Return("b64snapshot", nil).Times(1)

	req := httptest.NewRequest("GET", "/consent/export", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"cmp_info":"b64snapshot"}`, w.Body.String())
}

func TestConsentHandler_handleImport(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		_, bridge, router := newTestHandler(t)

		bridge.EXPECT().ImportCMPInfo(gomock.Any(), "b64snapshot").Return(true, nil).Times(1)

		body, err := json.Marshal(ImportRequest{CMPInfo: "b64snapshot"})
		require.NoError(t, err)

		req := httptest.NewRequest("POST", "/consent/import", bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"imported":true}`, w.Body.String())
	})

	t.Run("empty snapshot rejected before bridge", func(t *testing.T) {
		_, _, router := newTestHandler(t)

		req := httptest.NewRequest("POST", "/consent/import", bytes.NewReader([]byte(`{"cmp_info":""}`)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		_, _, router := newTestHandler(t)

		req := httptest.NewRequest("POST", "/consent/import", bytes.NewReader([]byte(`{`)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestConsentHandler_handleReset(t *testing.T) {
	_, bridge, router := newTestHandler(t)

	bridge.EXPECT().ResetConsentManagementData(gomock.Any()).Return(true, nil).Times(1)

	req := httptest.NewRequest("POST", "/consent/reset", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"reset":true}`, w.Body.String())
}
