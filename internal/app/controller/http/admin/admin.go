package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	httputils "github.com/teamwear/jersey-orders/internal/app/controller/http/utils"
	"github.com/teamwear/jersey-orders/internal/app/converter"
	"github.com/teamwear/jersey-orders/internal/app/entity"
	"github.com/teamwear/jersey-orders/internal/app/model"
	err_storage "github.com/teamwear/jersey-orders/internal/app/storage/api/errors"
	"github.com/teamwear/jersey-orders/internal/app/usecase/auth"
	"github.com/teamwear/jersey-orders/internal/app/usecase/token"
	"github.com/teamwear/jersey-orders/internal/app/validator"
)

const (
	ErrEmptyLoginRequest = "wrong admin credentials format: empty username or password"
	ErrBadCredentials    = "invalid username or password"
	ErrTokenExpired      = "token has expired"
	ErrInvalidAuth       = "auth credentials are invalid"
	ErrOrderNotFound     = "order not found"
	ErrInvalidOrderID    = "order id must be an integer"
	ErrInvalidStatus     = "status must be one of: pending, done"
	ErrReverseTransition = "completed orders can't go back to pending"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100

	statusWildcard = "all"
)

type AdminStorage interface {
	GetAdmin(ctx context.Context, username entity.AdminName) (entity.AdminUser, error)
	GetOrder(ctx context.Context, id entity.OrderID) (entity.Order, error)
	ListOrders(ctx context.Context, filter entity.OrderFilter) (entity.Orders, int64, error)
	UpdateOrderStatus(ctx context.Context, id entity.OrderID, status entity.OrderStatus) (entity.StatusChange, error)
	DeleteOrder(ctx context.Context, id entity.OrderID) (entity.Order, error)
	OrderStats(ctx context.Context) (entity.OrderStats, error)
}

type Notifier interface {
	StatusChanged(order entity.Order, previous, next entity.OrderStatus)
}

type Admin struct {
	storage  AdminStorage
	notifier Notifier
	issuer   token.Issuer
}

func New(storage AdminStorage, notifier Notifier, issuer token.Issuer) Admin {
	return Admin{
		storage:  storage,
		notifier: notifier,
		issuer:   issuer,
	}
}

func (a *Admin) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.LoginRequest
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			zap.L().Error("error while decoding admin login request", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if !validator.ValidateLoginRequest(request) {
			http.Error(w, ErrEmptyLoginRequest, http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		admin, err := auth.AuthenticateAdmin(ctx, entity.AdminName(request.Username), request.Password, a.storage)
		if err != nil {
			if errors.Is(err, auth.ErrBadCredentials) {
				http.Error(w, ErrBadCredentials, http.StatusUnauthorized)
				return
			}

			zap.L().Error("error while authenticating admin", zap.Error(err))
			http.Error(w, httputils.MsgInternalError, http.StatusInternalServerError)
			return
		}

		tokenString, err := a.issuer.BuildJWTString(admin.Username)
		if err != nil {
			zap.L().Error("error while building admin session token", zap.Error(err))
			http.Error(w, httputils.MsgInternalError, http.StatusInternalServerError)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, model.LoginResponse{
			Token: tokenString,
		})
	}
}

func (a *Admin) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := a.parseAdmin(w, r)
		if err != nil {
			zap.L().Info("rejected admin request while listing orders", zap.Error(err))
			return
		}

		filter, err := parseOrderFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		orders, total, err := a.storage.ListOrders(ctx, filter)
		if err != nil {
			zap.L().Error("error while listing orders", zap.Error(err))
			http.Error(w, httputils.MsgInternalError, http.StatusInternalServerError)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrdersToListResponse(orders, total, filter))
	}
}

func (a *Admin) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := a.parseAdmin(w, r)
		if err != nil {
			zap.L().Info("rejected admin request while getting order", zap.Error(err))
			return
		}

		id, err := parseOrderID(r)
		if err != nil {
			http.Error(w, ErrInvalidOrderID, http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		order, err := a.storage.GetOrder(ctx, id)
		if err != nil {
			if errors.Is(err, err_storage.ErrOrderNotFound) {
				http.Error(w, ErrOrderNotFound, http.StatusNotFound)
				return
			}

			zap.L().Error("error while getting order", zap.Error(err))
			http.Error(w, httputils.MsgInternalError, http.StatusInternalServerError)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderToResponse(order))
	}
}

func (a *Admin) UpdateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminName, err := a.parseAdmin(w, r)
		if err != nil {
			zap.L().Info("rejected admin request while updating order status", zap.Error(err))
			return
		}

		id, err := parseOrderID(r)
		if err != nil {
			http.Error(w, ErrInvalidOrderID, http.StatusBadRequest)
			return
		}

		var request model.UpdateStatusRequest
		err = json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			zap.L().Error("error while decoding status update request", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		newStatus := entity.OrderStatus(request.Status)
		if !newStatus.Valid() {
			http.Error(w, ErrInvalidStatus, http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		change, err := a.storage.UpdateOrderStatus(ctx, id, newStatus)
		if err != nil {
			if errors.Is(err, err_storage.ErrOrderNotFound) {
				http.Error(w, ErrOrderNotFound, http.StatusNotFound)
				return
			}
			if errors.Is(err, err_storage.ErrStatusReversal) {
				http.Error(w, ErrReverseTransition, http.StatusBadRequest)
				return
			}

			zap.L().Error("error while updating order status", zap.Error(err))
			http.Error(w, httputils.MsgInternalError, http.StatusInternalServerError)
			return
		}

		zap.L().Info("order status updated",
			zap.Int64("order_id", int64(change.Order.ID)),
			zap.String("previous_status", string(change.PreviousStatus)),
			zap.String("new_status", string(change.Order.Status)),
			zap.String("admin", adminName.String()))

		a.notifier.StatusChanged(change.Order, change.PreviousStatus, change.Order.Status)

		httputils.WriteJSON(w, http.StatusOK, model.UpdateStatusResponse{
			Order:          converter.ConvertOrderToResponse(change.Order),
			PreviousStatus: string(change.PreviousStatus),
			NewStatus:      string(change.Order.Status),
		})
	}
}

func (a *Admin) DeleteOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminName, err := a.parseAdmin(w, r)
		if err != nil {
			zap.L().Info("rejected admin request while deleting order", zap.Error(err))
			return
		}

		id, err := parseOrderID(r)
		if err != nil {
			http.Error(w, ErrInvalidOrderID, http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		order, err := a.storage.DeleteOrder(ctx, id)
		if err != nil {
			if errors.Is(err, err_storage.ErrOrderNotFound) {
				http.Error(w, ErrOrderNotFound, http.StatusNotFound)
				return
			}

			zap.L().Error("error while deleting order", zap.Error(err))
			http.Error(w, httputils.MsgInternalError, http.StatusInternalServerError)
			return
		}

		zap.L().Info("order deleted",
			zap.Int64("order_id", int64(order.ID)),
			zap.String("admin", adminName.String()))

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderToResponse(order))
	}
}

func (a *Admin) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := a.parseAdmin(w, r)
		if err != nil {
			zap.L().Info("rejected admin request while getting stats", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		stats, err := a.storage.OrderStats(ctx)
		if err != nil {
			zap.L().Error("error while aggregating order stats", zap.Error(err))
			http.Error(w, httputils.MsgInternalError, http.StatusInternalServerError)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertStatsToResponse(stats))
	}
}

func (a *Admin) parseAdmin(w http.ResponseWriter, r *http.Request) (entity.AdminName, error) {
	adminCtx, ok := r.Context().Value(entity.AdminCtxKey{}).(entity.AdminCtx)

	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return entity.AdminName(""), fmt.Errorf("admin identity couldn't obtain from context")
	}

	if adminCtx.StatusCode == http.StatusUnauthorized {
		http.Error(w, ErrTokenExpired, http.StatusUnauthorized)
		return entity.AdminName(""), errors.New(ErrTokenExpired)
	}

	if adminCtx.StatusCode == http.StatusForbidden {
		http.Error(w, ErrInvalidAuth, http.StatusForbidden)
		return entity.AdminName(""), fmt.Errorf("failed auth credentials")
	}

	if adminCtx.StatusCode == http.StatusOK && !adminCtx.Username.Valid() {
		http.Error(w, ErrInvalidAuth, http.StatusUnauthorized)
		return entity.AdminName(""), fmt.Errorf("invalid admin name with status ok")
	}

	return adminCtx.Username, nil
}

func parseOrderID(r *http.Request) (entity.OrderID, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return entity.OrderID(0), fmt.Errorf("order id is not an integer: %w", err)
	}

	return entity.OrderID(id), nil
}

func parseOrderFilter(r *http.Request) (entity.OrderFilter, error) {
	query := r.URL.Query()

	page := defaultPage
	if raw := query.Get("page"); len(raw) > 0 {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return entity.OrderFilter{}, fmt.Errorf("page must be a positive integer")
		}
		page = parsed
	}

	pageSize := defaultPageSize
	if raw := query.Get("limit"); len(raw) > 0 {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return entity.OrderFilter{}, fmt.Errorf("limit must be a positive integer")
		}
		pageSize = parsed
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	var status entity.OrderStatus
	if raw := query.Get("status"); len(raw) > 0 && raw != statusWildcard {
		status = entity.OrderStatus(raw)
		if !status.Valid() {
			return entity.OrderFilter{}, fmt.Errorf("status must be one of: pending, done, all")
		}
	}

	return entity.OrderFilter{
		Status:   status,
		Search:   query.Get("search"),
		Page:     page,
		PageSize: pageSize,
	}, nil
}
