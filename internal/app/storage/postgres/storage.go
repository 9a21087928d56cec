package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/teamwear/jersey-orders/internal/app/entity"
	err_storage "github.com/teamwear/jersey-orders/internal/app/storage/api/errors"
)

const orderColumns = `id, name, student_id, jersey_number, size, collar_type, sleeve_type,
		email, batch, transaction_id, notes, final_price, status, created_at, updated_at`

type Postgres struct {
	db *sql.DB
}

func NewPostgresStorage(dbStorageConnect string) (*Postgres, error) {
	db, err := sql.Open("pgx", dbStorageConnect)
	if err != nil {
		return nil, fmt.Errorf("error while postgresql connect: %w", err)
	}

	err = applyMigrations(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error while applying migrations: %w", err)
	}

	return &Postgres{
		db: db,
	}, nil
}

func (s *Postgres) Close() error {
	return s.db.Close()
}

func (s *Postgres) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Postgres) CreateOrder(ctx context.Context, draft entity.OrderDraft) (entity.Order, error) {
	query := `INSERT INTO orders
		(name, student_id, jersey_number, size, collar_type, sleeve_type,
		 email, batch, transaction_id, notes, final_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING ` + orderColumns

	row := s.db.QueryRowContext(ctx, query,
		draft.Name, draft.StudentID, draft.JerseyNumber, draft.Size, draft.CollarType,
		draft.SleeveType, draft.Email, draft.Batch, draft.TransactionID, draft.Notes,
		draft.FinalPrice, entity.StatusPending)

	order, err := scanOrder(row)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.Order{}, err_storage.ErrJerseyNumberExists
		}

		return entity.Order{}, fmt.Errorf("error while inserting order: %w", err)
	}

	return order, nil
}

func (s *Postgres) GetOrder(ctx context.Context, id entity.OrderID) (entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Order{}, err_storage.ErrOrderNotFound
		}

		return entity.Order{}, fmt.Errorf("error while getting order: %w", err)
	}

	return order, nil
}

func (s *Postgres) ListOrders(ctx context.Context, filter entity.OrderFilter) (entity.Orders, int64, error) {
	condition := ` FROM orders
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%'
		       OR student_id ILIKE '%' || $2 || '%'
		       OR email ILIKE '%' || $2 || '%'
		       OR COALESCE(batch, '') ILIKE '%' || $2 || '%')`

	search := escapeLikePattern(filter.Search)

	var total int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*)`+condition, string(filter.Status), search).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("error while counting orders: %w", err)
	}

	query := `SELECT ` + orderColumns + condition + `
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4`

	rows, err := s.db.QueryContext(ctx, query, string(filter.Status), search, filter.PageSize, filter.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("error while listing orders: %w", err)
	}
	defer rows.Close()

	orders := make(entity.Orders, 0, filter.PageSize)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error while scanning order row: %w", err)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error while iterating order rows: %w", err)
	}

	return orders, total, nil
}

// UpdateOrderStatus applies the transition in a single guarded statement so a
// request racing with another update can never move a completed order back to
// pending. The guard lives in the UPDATE itself; when it refuses the write the
// follow-up read only classifies the failure.
func (s *Postgres) UpdateOrderStatus(ctx context.Context, id entity.OrderID, status entity.OrderStatus) (entity.StatusChange, error) {
	query := `UPDATE orders SET status = $2, updated_at = NOW()
		FROM (SELECT id, status AS prev_status FROM orders WHERE id = $1 FOR UPDATE) prev
		WHERE orders.id = prev.id
		  AND NOT (prev.prev_status = $3 AND $2 = $4)
		RETURNING orders.id, orders.name, orders.student_id, orders.jersey_number, orders.size,
			orders.collar_type, orders.sleeve_type, orders.email, orders.batch,
			orders.transaction_id, orders.notes, orders.final_price, orders.status,
			orders.created_at, orders.updated_at, prev.prev_status`

	row := s.db.QueryRowContext(ctx, query, id, status, entity.StatusDone, entity.StatusPending)

	var (
		order entity.Order
		prev  entity.OrderStatus
	)
	err := row.Scan(&order.ID, &order.Name, &order.StudentID, &order.JerseyNumber, &order.Size,
		&order.CollarType, &order.SleeveType, &order.Email, &order.Batch,
		&order.TransactionID, &order.Notes, &order.FinalPrice, &order.Status,
		&order.CreatedAt, &order.UpdatedAt, &prev)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.StatusChange{}, s.classifyStatusUpdateMiss(ctx, id, status)
		}

		return entity.StatusChange{}, fmt.Errorf("error while updating order status: %w", err)
	}

	return entity.StatusChange{
		Order:          order,
		PreviousStatus: prev,
	}, nil
}

func (s *Postgres) classifyStatusUpdateMiss(ctx context.Context, id entity.OrderID, status entity.OrderStatus) error {
	var current entity.OrderStatus
	err := s.db.QueryRowContext(ctx, `SELECT status FROM orders WHERE id = $1`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err_storage.ErrOrderNotFound
		}

		return fmt.Errorf("error while classifying refused status update: %w", err)
	}

	if current == entity.StatusDone && status == entity.StatusPending {
		return err_storage.ErrStatusReversal
	}

	return err_storage.ErrOrderNotFound
}

func (s *Postgres) DeleteOrder(ctx context.Context, id entity.OrderID) (entity.Order, error) {
	query := `DELETE FROM orders WHERE id = $1 RETURNING ` + orderColumns

	order, err := scanOrder(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Order{}, err_storage.ErrOrderNotFound
		}

		return entity.Order{}, fmt.Errorf("error while deleting order: %w", err)
	}

	return order, nil
}

func (s *Postgres) OrderStats(ctx context.Context) (entity.OrderStats, error) {
	query := `SELECT COUNT(*),
		COUNT(*) FILTER (WHERE status = $1),
		COUNT(*) FILTER (WHERE status = $2),
		COALESCE(SUM(final_price) FILTER (WHERE status = $2), 0)
		FROM orders`

	var stats entity.OrderStats
	err := s.db.QueryRowContext(ctx, query, entity.StatusPending, entity.StatusDone).
		Scan(&stats.TotalOrders, &stats.PendingCount, &stats.DoneCount, &stats.DoneRevenue)
	if err != nil {
		return entity.OrderStats{}, fmt.Errorf("error while aggregating order stats: %w", err)
	}

	return stats, nil
}

func (s *Postgres) FindOrderByJerseyNumber(ctx context.Context, number int) (entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE jersey_number = $1`

	order, err := scanOrder(s.db.QueryRowContext(ctx, query, number))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Order{}, err_storage.ErrOrderNotFound
		}

		return entity.Order{}, fmt.Errorf("error while finding order by jersey number: %w", err)
	}

	return order, nil
}

func (s *Postgres) OrderNameExists(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM orders WHERE LOWER(name) = LOWER($1))`

	var exists bool
	err := s.db.QueryRowContext(ctx, query, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error while checking order name: %w", err)
	}

	return exists, nil
}

func (s *Postgres) GetAdmin(ctx context.Context, username entity.AdminName) (entity.AdminUser, error) {
	query := `SELECT username, password_hash FROM admins WHERE username = $1`

	var admin entity.AdminUser
	err := s.db.QueryRowContext(ctx, query, username).Scan(&admin.Username, &admin.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.AdminUser{}, err_storage.ErrAdminNotFound
		}

		return entity.AdminUser{}, fmt.Errorf("error while getting admin: %w", err)
	}

	return admin, nil
}

// CreateAdmin is idempotent so the startup provisioning step can run on
// every boot without failing on an already seeded account.
func (s *Postgres) CreateAdmin(ctx context.Context, admin entity.AdminUser) error {
	query := `INSERT INTO admins (username, password_hash, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (username) DO NOTHING`

	_, err := s.db.ExecContext(ctx, query, admin.Username, admin.PasswordHash)
	if err != nil {
		return fmt.Errorf("error while creating admin: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (entity.Order, error) {
	var order entity.Order
	err := row.Scan(&order.ID, &order.Name, &order.StudentID, &order.JerseyNumber, &order.Size,
		&order.CollarType, &order.SleeveType, &order.Email, &order.Batch,
		&order.TransactionID, &order.Notes, &order.FinalPrice, &order.Status,
		&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return entity.Order{}, err
	}

	return order, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLikePattern neutralizes LIKE metacharacters in user-supplied search
// text so it matches literally instead of acting as a wildcard.
func escapeLikePattern(search string) string {
	return likeEscaper.Replace(search)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
