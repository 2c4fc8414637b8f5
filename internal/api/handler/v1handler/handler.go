// Package v1handler implements the v1 JSON API on top of the lending rules.
package v1handler

import (
	"context"
	"errors"
	"library/internal/lending"
	"library/pkg/domain"
	"library/pkg/logger"
	"library/pkg/serrors"
	"net/http"
	"strconv"

	"github.com/go-faster/jx"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Deps are the services the handlers call into.
type Deps struct {
	Lending lending.Lending
}

type Handler struct {
	deps     Deps
	validate *validator.Validate
}

func New(deps Deps) *Handler {
	return &Handler{
		deps:     deps,
		validate: validator.New(),
	}
}

// Register adds the v1 routes to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/users/{userID}/borrow", h.BorrowItems)
	mux.HandleFunc("POST /v1/users/{userID}/return", h.ReturnItems)
	mux.HandleFunc("GET /v1/users/{userID}/loans", h.CurrentLoans)
	mux.HandleFunc("GET /v1/users/{userID}/late-fees", h.LateFees)
	mux.HandleFunc("GET /v1/users/{userID}/orders", h.Orders)
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

func (e ErrorResponse) encode(enc *jx.Encoder) {
	enc.Obj(func(enc *jx.Encoder) {
		enc.Field("code", func(enc *jx.Encoder) { enc.Str(e.Code) })
		enc.Field("message", func(enc *jx.Encoder) { enc.Str(e.Message) })
	})
}

// kindStatus maps semantic kinds to HTTP status codes and default messages.
// Sub-kinds match their family.
var kindStatus = []struct { //nolint: gochecknoglobals
	kind    serrors.Kind
	status  int
	message string
}{
	{lending.ErrOrderFailed, http.StatusUnprocessableEntity, "order failed"},
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrConflict, http.StatusConflict, "conflicting request, try again"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrForbidden, http.StatusForbidden, "forbidden"},
	{serrors.ErrTimeout, http.StatusGatewayTimeout, "request timed out"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
	{serrors.ErrRateLimited, http.StatusTooManyRequests, "too many requests"},
}

// NewError translates err into the response sent to the client. Anything that
// is not a known semantic error is logged and reported as an internal error
// without details.
func (h *Handler) NewError(ctx context.Context, err error) ErrorResponse {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorResponse{
			StatusCode: http.StatusGatewayTimeout,
			Code:       serrors.ErrTimeout.Error(),
			Message:    "request timed out",
		}
	}

	kind := serrors.KindOf(err)
	if kind == nil {
		// a bare kind sentinel
		kind, _ = err.(serrors.Kind) //nolint: errorlint
	}

	for _, ks := range kindStatus {
		if kind == nil || !errors.Is(kind, ks.kind) {
			continue
		}

		msg := ks.message
		var semantic *serrors.Error
		if errors.As(err, &semantic) && semantic.Message() != "" {
			msg = semantic.Message()
		}

		return ErrorResponse{StatusCode: ks.status, Code: kind.Error(), Message: msg}
	}

	logger.Error(ctx, "request failed", zap.Error(err))

	return ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Code:       serrors.ErrInternal.Error(),
		Message:    "internal error",
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)

	var enc jx.Encoder
	res.encode(&enc)
	writeJSON(w, res.StatusCode, &enc)
}

func writeJSON(w http.ResponseWriter, status int, enc *jx.Encoder) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(enc.Bytes())
}

// userIDFromPath parses the {userID} path segment.
func userIDFromPath(r *http.Request) (domain.UserID, error) {
	raw := r.PathValue("userID")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid user id %q", raw)
	}

	return domain.UserID(id), nil
}
