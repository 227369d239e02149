package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/planna-app/planna/internal/model"
	"github.com/planna-app/planna/internal/session"
	"github.com/planna-app/planna/internal/store"
)

type ListHandler struct {
	listStore *store.ListStore
}

func NewListHandler(ls *store.ListStore) *ListHandler {
	return &ListHandler{listStore: ls}
}

func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var draft model.ListDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	sess, _ := session.FromContext(r.Context())
	list := h.listStore.CreateList(sess, draft)
	writeJSON(w, http.StatusCreated, list)
}

func (h *ListHandler) Lists(w http.ResponseWriter, r *http.Request) {
	var lists []model.List
	if groupID := r.URL.Query().Get("group_id"); groupID != "" {
		lists = h.listStore.ListsByGroup(groupID)
	} else {
		lists = h.listStore.Lists()
	}
	if lists == nil {
		lists = []model.List{}
	}
	writeJSON(w, http.StatusOK, lists)
}

// DeleteList removes the list and every item on it.
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	h.listStore.DeleteList(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *ListHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var draft model.ItemDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	draft.ListID = r.PathValue("list_id")
	draft.Text = strings.TrimSpace(draft.Text)
	if draft.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	sess, _ := session.FromContext(r.Context())
	item := h.listStore.AddItem(sess, draft)
	writeJSON(w, http.StatusCreated, item)
}

func (h *ListHandler) Items(w http.ResponseWriter, r *http.Request) {
	items := h.listStore.ItemsByList(r.PathValue("list_id"))
	if items == nil {
		items = []model.ListItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ListHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	h.listStore.ToggleItem(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *ListHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	h.listStore.DeleteItem(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}
