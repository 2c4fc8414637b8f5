package v1handler

import (
	"context"
	"io"
	"library/pkg/domain"
	"library/pkg/serrors"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// maxOrderBodyBytes bounds order request bodies.
const maxOrderBodyBytes = 64 << 10

// OrderRequest is the body of borrow and return calls: {"itemIds": [1, 2]}.
type OrderRequest struct {
	ItemIDs []int64 `validate:"max=1000,dive,gt=0"`
}

// DecodeOrderRequest reads an OrderRequest. Unknown fields are ignored.
func DecodeOrderRequest(r io.Reader) (OrderRequest, error) {
	var req OrderRequest

	d := jx.Decode(r, 512) //nolint: mnd
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "itemIds" {
			return d.Skip()
		}

		return d.Arr(func(d *jx.Decoder) error {
			id, err := d.Int64()
			if err != nil {
				return errors.Wrap(err, "item id")
			}
			req.ItemIDs = append(req.ItemIDs, id)

			return nil
		})
	})
	if err != nil {
		return OrderRequest{}, errors.Wrap(err, "decode order request")
	}

	return req, nil
}

func (r OrderRequest) domainItemIDs() []domain.ItemID {
	ids := make([]domain.ItemID, len(r.ItemIDs))
	for i, id := range r.ItemIDs {
		ids[i] = domain.ItemID(id)
	}

	return ids
}

// order parses the request and hands it to fn. Success is 204 No Content.
func (h *Handler) order(w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, userID domain.UserID, itemIDs []domain.ItemID) error) {
	userID, err := userIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	req, err := DecodeOrderRequest(http.MaxBytesReader(w, r.Body, maxOrderBodyBytes))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "item ids must be positive"))

		return
	}

	if err := fn(r.Context(), userID, req.domainItemIDs()); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BorrowItems handles POST /v1/users/{userID}/borrow.
func (h *Handler) BorrowItems(w http.ResponseWriter, r *http.Request) {
	h.order(w, r, h.deps.Lending.BorrowItems)
}

// ReturnItems handles POST /v1/users/{userID}/return.
func (h *Handler) ReturnItems(w http.ResponseWriter, r *http.Request) {
	h.order(w, r, h.deps.Lending.ReturnItems)
}
