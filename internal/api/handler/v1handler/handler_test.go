package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"library/internal/api/handler/v1handler"
	"library/internal/lending"
	"library/pkg/logger"
	"library/pkg/serrors"
	"library/pkg/storage"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "plain error",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			code:    serrors.ErrInternal.Error(),
			message: "internal error",
		},
		{
			name:    "kind sentinel",
			err:     serrors.ErrNotFound,
			status:  http.StatusNotFound,
			code:    serrors.ErrNotFound.Error(),
			message: "resource not found",
		},
		{
			name:    "bad request with message",
			err:     serrors.With(serrors.ErrBadRequest, "invalid user id %q", "x"),
			status:  http.StatusBadRequest,
			code:    serrors.ErrBadRequest.Error(),
			message: `invalid user id "x"`,
		},
		{
			name:    "order failure",
			err:     serrors.With(lending.ErrItemsNotFound, "item ids do not exist: [4]"),
			status:  http.StatusUnprocessableEntity,
			code:    "ITEMS_NOT_FOUND",
			message: "item ids do not exist: [4]",
		},
		{
			name:    "wrapped order failure",
			err:     fmt.Errorf("handler: %w", serrors.With(lending.ErrEmptyOrder, "empty order")),
			status:  http.StatusUnprocessableEntity,
			code:    "EMPTY_ORDER",
			message: "empty order",
		},
		{
			name:    "concurrent borrow",
			err:     serrors.Wrap(storage.ErrItemAlreadyBorrowed, errors.New("23505"), ""),
			status:  http.StatusConflict,
			code:    "ITEM_ALREADY_BORROWED",
			message: "conflicting request, try again",
		},
		{
			name:    "internal kind",
			err:     serrors.KindOnly(serrors.ErrInternal),
			status:  http.StatusInternalServerError,
			code:    serrors.ErrInternal.Error(),
			message: "internal error",
		},
		{
			name:    "deadline",
			err:     fmt.Errorf("could not begin tx: %w", context.DeadlineExceeded),
			status:  http.StatusGatewayTimeout,
			code:    serrors.ErrTimeout.Error(),
			message: "request timed out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := h.NewError(context.Background(), tt.err)
			require.Equal(t, tt.status, res.StatusCode)
			require.Equal(t, tt.code, res.Code)
			require.Equal(t, tt.message, res.Message)
		})
	}
}

func TestNewError_Logging(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	// rejections are logged where the order is evaluated
	h.NewError(ctx, serrors.With(lending.ErrItemsUnavailable, "items are not available: [Dune]"))
	require.Zero(t, logs.Len())

	h.NewError(ctx, errors.New("connection reset"))
	require.Equal(t, 1, logs.FilterMessage("request failed").FilterLevelExact(zapcore.ErrorLevel).Len())
}
