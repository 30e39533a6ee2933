package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"solar-dispatch/internal/domain/customer"
	"solar-dispatch/internal/infra"
	"solar-dispatch/internal/pkg/pgconv"
	"solar-dispatch/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// customerColumns matches scanCustomer. Patchable columns follow the fixed
// part in customer.AllFields order.
var customerColumns = func() string {
	cols := []string{"id", "name", "phone", "address", "salesman", "created_at", "updated_at"}
	for _, f := range customer.AllFields() {
		cols = append(cols, string(f))
	}
	return strings.Join(cols, ", ")
}()

type CustomerRepository struct {
	db shared.DBTX
}

func NewCustomerRepository(db shared.DBTX) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx, "SELECT "+customerColumns+" FROM customers ORDER BY created_at, id")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	var out []*customer.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate customers", err)
	}
	return out, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	row := r.db.QueryRow(ctx, "SELECT "+customerColumns+" FROM customers WHERE id = $1", id)
	c, err := scanCustomer(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get customer", err)
	}
	return c, nil
}

func (r *CustomerRepository) Update(ctx context.Context, id uuid.UUID, patch customer.Patch) (*customer.Customer, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if len(patch) == 0 {
		return r.GetByID(ctx, id)
	}

	fields := patch.Fields()
	sets := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+1)
	args = append(args, id)
	for i, f := range fields {
		sets = append(sets, fmt.Sprintf("%s = $%d", f, i+2))
		args = append(args, pgconv.StringPtrToPgtype(patch[f]))
	}
	sets = append(sets, "updated_at = now()")

	query := "UPDATE customers SET " + strings.Join(sets, ", ") + " WHERE id = $1 RETURNING " + customerColumns
	c, err := scanCustomer(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update customer", err)
	}
	return c, nil
}

func (r *CustomerRepository) AssignConstructionTeam(ctx context.Context, id uuid.UUID, team, phone, dispatchDate string) (*customer.Customer, error) {
	const query = `
UPDATE customers
SET construction_team = $2, construction_team_phone = NULLIF($3, ''), dispatch_date = $4, updated_at = now()
WHERE id = $1 AND (construction_team IS NULL OR btrim(construction_team) = '')
RETURNING `
	c, err := scanCustomer(r.db.QueryRow(ctx, query+customerColumns, id, team, phone, dispatchDate))
	if err == nil {
		return c, nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to assign construction team", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)", id).Scan(&exists); err != nil {
		return nil, infra.WrapRepoErr("failed to check customer", err)
	}
	if !exists {
		return nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil, infra.WrapRepoErr("customer already assigned", nil, infra.KindConflict)
}

func scanCustomer(row pgx.Row) (*customer.Customer, error) {
	var (
		p         customer.Params
		createdAt time.Time
		updatedAt time.Time
	)
	fields := customer.AllFields()
	values := make([]pgtype.Text, len(fields))

	dest := []any{&p.ID, &p.Name, &p.Phone, &p.Address, &p.Salesman, &createdAt, &updatedAt}
	for i := range values {
		dest = append(dest, &values[i])
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	p.CreatedAt = createdAt
	p.UpdatedAt = updatedAt
	p.Values = make(map[customer.Field]*string, len(fields))
	for i, f := range fields {
		if v := pgconv.StringPtrFromPgtype(values[i]); v != nil {
			p.Values[f] = v
		}
	}
	return customer.Reconstruct(p), nil
}
