package handlers

import (
	"JewelryStore/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// TransferHandler — заявки на перемещение между филиалами.
type TransferHandler struct {
	base
	TransferService *service.TransferService
	views           *viewComposer
}

func NewTransferHandler(transferService *service.TransferService, views *viewComposer, b base) *TransferHandler {
	return &TransferHandler{base: b, TransferService: transferService, views: views}
}

// List поддерживает фильтры ?status=&branchId=.
func (h *TransferHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	list, err := h.TransferService.List(r.Context(), actor, service.TransferListFilter{
		Status:   q.Get("status"),
		BranchID: q.Get("branchId"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	l := h.views.newLookup(r.Context(), actor)
	out := make([]transferView, 0, len(list))
	for _, t := range list {
		out = append(out, l.transferView(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *TransferHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	t, err := h.TransferService.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.views.newLookup(r.Context(), actor).transferView(*t))
}

func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in service.CreateTransferInput
	if err := decodeJSON(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	t, err := h.TransferService.Create(r.Context(), actor, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.views.newLookup(r.Context(), actor).transferView(*t))
}

// Respond принимает {"status":"approved"|"rejected"}. Повторная отправка
// не идемпотентна: обработанная заявка отвечает 409.
func (h *TransferHandler) Respond(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in service.RespondInput
	if err := decodeJSON(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	t, err := h.TransferService.Respond(r.Context(), actor, chi.URLParam(r, "id"), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.views.newLookup(r.Context(), actor).transferView(*t))
}
