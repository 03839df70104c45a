package handlers

import (
	"JewelryStore/internal/apperr"
	"JewelryStore/internal/middleware"
	"JewelryStore/internal/model"
	"JewelryStore/internal/service"
	"net/http"
)

// AccountHandler — вход, регистрация и текущая учётная запись.
type AccountHandler struct {
	base
	AccountService *service.AccountService
}

func NewAccountHandler(accountService *service.AccountService, b base) *AccountHandler {
	return &AccountHandler{base: b, AccountService: accountService}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userView struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	BranchID *string `json:"branchId"`
}

type loginResponse struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

func toUserView(a *model.Account) userView {
	return userView{ID: a.ID, Username: a.Username, Name: a.Name, Role: a.Role, BranchID: a.BranchID}
}

// Login проверяет логин и пароль, выдаёт токен в теле ответа и в cookie.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.Username == "" || req.Password == "" {
		h.writeError(w, r, apperr.Validation("username and password are required", nil))
		return
	}

	account, err := h.AccountService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.Logger.Warnw("login failed", "username", req.Username, "error", err)
		h.writeError(w, r, err)
		return
	}

	token, err := middleware.SetLoginCookie(w, account, h.Config.AuthSecret, h.Config.TokenTTL)
	if err != nil {
		h.writeError(w, r, apperr.Internal(err))
		return
	}
	h.Logger.Infow("user logged in", "account_id", account.ID, "role", account.Role)
	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: toUserView(account)})
}

// Register создаёт учётную запись; доступно администратору.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in service.RegisterInput
	if err := decodeJSON(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}

	account, err := h.AccountService.Register(r.Context(), actor, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.Logger.Infow("account registered", "account_id", account.ID, "by", actor.AccountID)
	writeJSON(w, http.StatusCreated, toUserView(account))
}

func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, apperr.ErrUnauthenticated)
		return
	}
	account, err := h.AccountService.Get(r.Context(), accountID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserView(account))
}
