package handlers

//go:generate mockgen -source=transactions.go -destination=transactions_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-payment-intake/internal/logger"
	"github.com/sbilibin2017/gw-payment-intake/internal/middlewares"
	"github.com/sbilibin2017/gw-payment-intake/internal/models"
)

// HistoryReader lists stored transactions.
type HistoryReader interface {
	History(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
}

// TransactionsResponse wraps a transaction list
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
}

// NewTransactionsHandler returns an HTTP handler listing transactions, newest first.
// Normal users only see their own payments; admins see everything or the
// payments of the user given in the query.
// @Summary Transaction history
// @Tags payments
// @Produce json
// @Param method query string false "Payment method"
// @Param status query string false "approved or declined"
// @Param from query string false "RFC 3339 timestamp or YYYY-MM-DD"
// @Param to query string false "RFC 3339 timestamp or YYYY-MM-DD"
// @Param user query string false "Owner login (admins only)"
// @Success 200 {object} handlers.TransactionsResponse "Transactions"
// @Failure 400 {object} handlers.ErrorResponse "Invalid query"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /transactions [get]
// @Security BearerAuth
func NewTransactionsHandler(svc HistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := middlewares.ClaimsFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		filter, err := parseFilter(r.URL.Query())
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if claims.Role != models.RoleAdmin {
			filter.UserLogin = claims.Login
		}

		txns, err := svc.History(ctx, filter)
		if err != nil {
			logger.Log.Errorw("failed to get history", "login", claims.Login, "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}
		if txns == nil {
			txns = []models.Transaction{}
		}

		writeJSON(w, http.StatusOK, TransactionsResponse{Transactions: txns})
	}
}
