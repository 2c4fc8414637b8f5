package v1handler

import (
	"library/internal/lending"
	"library/pkg/domain"
	"net/http"
	"time"

	"github.com/go-faster/jx"
)

func encodeLoans(enc *jx.Encoder, loans []lending.Loan) {
	enc.Obj(func(enc *jx.Encoder) {
		enc.Field("items", func(enc *jx.Encoder) {
			enc.Arr(func(enc *jx.Encoder) {
				for _, loan := range loans {
					enc.Obj(func(enc *jx.Encoder) {
						enc.Field("itemId", func(enc *jx.Encoder) { enc.Int64(int64(loan.Item.ID)) })
						enc.Field("title", func(enc *jx.Encoder) { enc.Str(loan.Item.Title) })
						enc.Field("category", func(enc *jx.Encoder) { enc.Str(string(loan.Item.Category)) })
						enc.Field("start", func(enc *jx.Encoder) { enc.Str(loan.Start.Format(time.RFC3339)) })
						enc.Field("daysHeld", func(enc *jx.Encoder) { enc.Int(loan.DaysHeld) })
						enc.Field("overdue", func(enc *jx.Encoder) { enc.Bool(loan.Overdue) })
					})
				}
			})
		})
	})
}

func encodeLateFees(enc *jx.Encoder, fees []domain.LateFee) {
	enc.Obj(func(enc *jx.Encoder) {
		enc.Field("items", func(enc *jx.Encoder) {
			enc.Arr(func(enc *jx.Encoder) {
				for _, fee := range fees {
					enc.Obj(func(enc *jx.Encoder) {
						enc.Field("id", func(enc *jx.Encoder) { enc.Int64(int64(fee.ID)) })
						enc.Field("itemId", func(enc *jx.Encoder) { enc.Int64(int64(fee.ItemID)) })
						enc.Field("days", func(enc *jx.Encoder) { enc.Int(fee.Days) })
						enc.Field("paid", func(enc *jx.Encoder) { enc.Bool(fee.Paid) })
						enc.Field("createdAt", func(enc *jx.Encoder) { enc.Str(fee.CreatedAt.Format(time.RFC3339)) })
					})
				}
			})
		})
	})
}

func encodeOrders(enc *jx.Encoder, orders []domain.Order) {
	enc.Obj(func(enc *jx.Encoder) {
		enc.Field("items", func(enc *jx.Encoder) {
			enc.Arr(func(enc *jx.Encoder) {
				for _, order := range orders {
					enc.Obj(func(enc *jx.Encoder) {
						enc.Field("id", func(enc *jx.Encoder) { enc.Int64(int64(order.ID)) })
						enc.Field("type", func(enc *jx.Encoder) { enc.Str(string(order.Type)) })
						enc.Field("createdAt", func(enc *jx.Encoder) { enc.Str(order.CreatedAt.Format(time.RFC3339)) })
						enc.Field("itemIds", func(enc *jx.Encoder) {
							enc.Arr(func(enc *jx.Encoder) {
								for _, id := range order.ItemIDs {
									enc.Int64(int64(id))
								}
							})
						})
					})
				}
			})
		})
	})
}

// CurrentLoans handles GET /v1/users/{userID}/loans.
func (h *Handler) CurrentLoans(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	loans, err := h.deps.Lending.CurrentLoans(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var enc jx.Encoder
	encodeLoans(&enc, loans)
	writeJSON(w, http.StatusOK, &enc)
}

// LateFees handles GET /v1/users/{userID}/late-fees.
func (h *Handler) LateFees(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	fees, err := h.deps.Lending.LateFees(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var enc jx.Encoder
	encodeLateFees(&enc, fees)
	writeJSON(w, http.StatusOK, &enc)
}

// Orders handles GET /v1/users/{userID}/orders.
func (h *Handler) Orders(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	orders, err := h.deps.Lending.Orders(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var enc jx.Encoder
	encodeOrders(&enc, orders)
	writeJSON(w, http.StatusOK, &enc)
}
