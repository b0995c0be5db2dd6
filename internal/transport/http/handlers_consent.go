package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	consentModel "cmbridge/internal/consent/models"
	"cmbridge/internal/transport/httputil"
	dErrors "cmbridge/pkg/domain-errors"
)

// BridgeService is the slice of the bridge call surface the diagnostics
// endpoints read from. Mutating operations stay off this surface except for
// import and reset, which exist so a tester can swap consent state on a
// running instance.
type BridgeService interface {
	GetUserStatus(ctx context.Context) (consentModel.UserStatus, error)
	IsConsentRequired(ctx context.Context) (bool, error)
	GetStatusForPurpose(ctx context.Context, purposeID string) (consentModel.ConsentStatus, error)
	GetStatusForVendor(ctx context.Context, vendorID string) (consentModel.ConsentStatus, error)
	GetGoogleConsentModeStatus(ctx context.Context) (consentModel.GoogleConsentModeStatus, error)
	ExportCMPInfo(ctx context.Context) (string, error)
	ImportCMPInfo(ctx context.Context, cmpInfo string) (bool, error)
	ResetConsentManagementData(ctx context.Context) (bool, error)
}

// ConsentHandler exposes bridge consent state over HTTP.
type ConsentHandler struct {
	logger *slog.Logger
	bridge BridgeService
}

// NewConsentHandler creates a new ConsentHandler.
func NewConsentHandler(bridge BridgeService, logger *slog.Logger) *ConsentHandler {
	return &ConsentHandler{logger: logger, bridge: bridge}
}

// Register mounts the consent routes on the given router.
func (h *ConsentHandler) Register(r chi.Router) {
	r.Get("/consent/status", h.handleUserStatus)
	r.Get("/consent/required", h.handleConsentRequired)
	r.Get("/consent/google-consent-mode", h.handleGoogleConsentMode)
	r.Get("/consent/purposes/{id}", h.handlePurposeStatus)
	r.Get("/consent/vendors/{id}", h.handleVendorStatus)
	r.Get("/consent/export", h.handleExport)
	r.Post("/consent/import", h.handleImport)
	r.Post("/consent/reset", h.handleReset)
}

func (h *ConsentHandler) handleUserStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.bridge.GetUserStatus(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, status)
}

func (h *ConsentHandler) handleConsentRequired(w http.ResponseWriter, r *http.Request) {
	required, err := h.bridge.IsConsentRequired(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"required": required})
}

func (h *ConsentHandler) handleGoogleConsentMode(w http.ResponseWriter, r *http.Request) {
	status, err := h.bridge.GetGoogleConsentModeStatus(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, status)
}

func (h *ConsentHandler) handlePurposeStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.bridge.GetStatusForPurpose(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": string(status)})
}

func (h *ConsentHandler) handleVendorStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.bridge.GetStatusForVendor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": string(status)})
}

func (h *ConsentHandler) handleExport(w http.ResponseWriter, r *http.Request) {
	info, err := h.bridge.ExportCMPInfo(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"cmp_info": info})
}

// ImportRequest carries an opaque consent snapshot previously produced by the
// export endpoint.
type ImportRequest struct {
	CMPInfo string `json:"cmp_info"`
}

func (h *ConsentHandler) handleImport(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "malformed import request body"))
		return
	}
	if req.CMPInfo == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "cmp_info must not be empty"))
		return
	}

	ok, err := h.bridge.ImportCMPInfo(r.Context(), req.CMPInfo)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"imported": ok})
}

func (h *ConsentHandler) handleReset(w http.ResponseWriter, r *http.Request) {
	ok, err := h.bridge.ResetConsentManagementData(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"reset": ok})
}
