package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/planna-app/planna/internal/model"
	"github.com/planna-app/planna/internal/session"
	"github.com/planna-app/planna/internal/store"
)

type GroupHandler struct {
	groupStore *store.GroupStore
	authStore  *store.AuthStore
	logger     *slog.Logger
}

func NewGroupHandler(gs *store.GroupStore, as *store.AuthStore, logger *slog.Logger) *GroupHandler {
	return &GroupHandler{groupStore: gs, authStore: as, logger: logger}
}

func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	sess, _ := session.FromContext(r.Context())
	group, err := h.groupStore.CreateGroup(sess, req.Name)
	if err != nil {
		h.logger.Error("create group", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create group")
		return
	}

	h.enrollCurrentUser(sess)
	writeJSON(w, http.StatusCreated, group)
}

func (h *GroupHandler) JoinGroup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "code is required")
		return
	}

	sess, _ := session.FromContext(r.Context())
	group := h.groupStore.JoinGroup(sess, req.Code)
	h.enrollCurrentUser(sess)
	writeJSON(w, http.StatusOK, group)
}

func (h *GroupHandler) LeaveGroup(w http.ResponseWriter, r *http.Request) {
	h.groupStore.LeaveGroup()
	w.WriteHeader(http.StatusNoContent)
}

func (h *GroupHandler) CurrentGroup(w http.ResponseWriter, r *http.Request) {
	group := h.groupStore.CurrentGroup()
	if group == nil {
		writeError(w, http.StatusNotFound, "no current group")
		return
	}
	writeJSON(w, http.StatusOK, group)
}

func (h *GroupHandler) Members(w http.ResponseWriter, r *http.Request) {
	members := h.groupStore.Members()
	if members == nil {
		members = []model.GroupMember{}
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *GroupHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var patch model.MemberPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	h.groupStore.UpdateMember(r.PathValue("id"), patch)
	w.WriteHeader(http.StatusNoContent)
}

// enrollCurrentUser adds the session user to the group's member list,
// carrying over their profile name and color when available.
func (h *GroupHandler) enrollCurrentUser(sess session.Context) {
	name, _, _ := strings.Cut(sess.Email, "@")
	color := ""
	if user := h.authStore.CurrentUser(); user != nil {
		name = user.Name
		color = user.Color
	}
	h.groupStore.AddMember(sess.UserID, name, color)
}
