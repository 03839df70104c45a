package handlers

import (
	"JewelryStore/internal/apperr"
	"JewelryStore/internal/config"
	"JewelryStore/internal/middleware"
	"JewelryStore/internal/policy"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// base — общие зависимости хендлеров.
type base struct {
	Logger *zap.SugaredLogger
	Config *config.Config
}

type errorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Detail  string            `json:"detail,omitempty"`
}

var kindStatus = map[apperr.Kind]int{
	apperr.KindNotFound:             http.StatusNotFound,
	apperr.KindForbidden:            http.StatusForbidden,
	apperr.KindUnauthenticated:      http.StatusUnauthorized,
	apperr.KindInvalidQuantity:      http.StatusBadRequest,
	apperr.KindInsufficientQuantity: http.StatusBadRequest,
	apperr.KindInvalidTransition:    http.StatusConflict,
	apperr.KindValidation:           http.StatusBadRequest,
	apperr.KindConflict:             http.StatusConflict,
	apperr.KindInternal:             http.StatusInternalServerError,
}

// StatusFor возвращает HTTP-статус для вида ошибки.
func StatusFor(kind apperr.Kind) int {
	if s, ok := kindStatus[kind]; ok {
		return s
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError отображает ошибку сервиса в ответ. Внутренние ошибки логируются
// и в production отдаются без подробностей.
func (b base) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.Internal(err)
	}

	resp := errorResponse{Message: appErr.Msg, Fields: appErr.Fields}
	status := StatusFor(appErr.Kind)
	if appErr.Kind == apperr.KindInternal {
		b.Logger.Errorw("request failed", "method", r.Method, "uri", r.URL.RequestURI(), "error", err)
		resp.Message = "internal server error"
		if !b.Config.IsProduction() {
			resp.Detail = err.Error()
		}
	} else {
		b.Logger.Debugw("request rejected", "uri", r.URL.RequestURI(), "kind", appErr.Kind, "error", appErr.Msg)
	}
	writeJSON(w, status, resp)
}

// decodeJSON читает тело запроса в v; неизвестные поля и мусор дают ошибку валидации.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperr.Validation("malformed JSON body: "+err.Error(), nil)
	}
	return nil
}

// actorFrom достаёт actor из контекста; маршруты за RequireAuth всегда его имеют.
func actorFrom(r *http.Request) (policy.Actor, error) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		return policy.Actor{}, apperr.ErrUnauthenticated
	}
	return actor, nil
}
