package handler

import (
	"encoding/json"
	"net/http"

	"github.com/planna-app/planna/internal/localstore"
)

type SettingsHandler struct {
	storage *localstore.Store
}

func NewSettingsHandler(storage *localstore.Store) *SettingsHandler {
	return &SettingsHandler{storage: storage}
}

type notificationSettings struct {
	NotificationsEnabled bool `json:"notifications_enabled"`
}

func (h *SettingsHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.storage.GetBool(localstore.KeyNotifications, true)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read settings")
		return
	}
	writeJSON(w, http.StatusOK, notificationSettings{NotificationsEnabled: enabled})
}

func (h *SettingsHandler) UpdateNotifications(w http.ResponseWriter, r *http.Request) {
	var req notificationSettings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.storage.SetBool(localstore.KeyNotifications, req.NotificationsEnabled); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	writeJSON(w, http.StatusOK, req)
}
