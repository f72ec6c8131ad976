package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cliente360-api/internal/domain"
	"github.com/jhoicas/cliente360-api/internal/domain/entity"
	"github.com/jhoicas/cliente360-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, company_id, first_name, last_name, email, phone, date_of_birth,
		segmentation_status, total_transactions, rfm_recency, rfm_frequency, rfm_monetary, rfm_grade,
		clv, total_spend, last_purchase_at, created_at, updated_at`

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	rec, freq, mon, grade := rfmColumns(c.RFM)
	_, err := r.q.Exec(ctx, query,
		c.ID, c.CompanyID, c.FirstName, c.LastName, c.Email, c.Phone, c.DateOfBirth,
		c.SegmentationStatus, c.TotalTransactions, rec, freq, mon, grade,
		c.CLV, c.TotalSpend, c.LastPurchaseAt, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente de la empresa por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers WHERE company_id = $1 AND id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, companyID, id), "get customer")
}

// GetByCompanyAndEmail obtiene un cliente por empresa y email.
func (r *CustomerRepo) GetByCompanyAndEmail(ctx context.Context, companyID, email string) (*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers WHERE company_id = $1 AND email = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, companyID, email), "get customer by email")
}

// ListByCompany lista clientes de la empresa con paginación.
func (r *CustomerRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers WHERE company_id = $1 ORDER BY first_name, last_name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers SET first_name = $3, last_name = $4, email = $5, phone = $6,
			date_of_birth = $7, segmentation_status = $8, total_transactions = $9,
			rfm_recency = $10, rfm_frequency = $11, rfm_monetary = $12, rfm_grade = $13,
			clv = $14, total_spend = $15, last_purchase_at = $16, updated_at = $17
		WHERE company_id = $1 AND id = $2`
	rec, freq, mon, grade := rfmColumns(c.RFM)
	_, err := r.q.Exec(ctx, query,
		c.CompanyID, c.ID, c.FirstName, c.LastName, c.Email, c.Phone,
		c.DateOfBirth, c.SegmentationStatus, c.TotalTransactions,
		rec, freq, mon, grade,
		c.CLV, c.TotalSpend, c.LastPurchaseAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente de la empresa por ID.
func (r *CustomerRepo) Delete(ctx context.Context, companyID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM customers WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) scanOne(row pgx.Row, op string) (*entity.Customer, error) {
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// scanCustomer lee una fila de customers. Los componentes RFM viajan en columnas
// nullable separadas; los tres presentes reconstruyen el RFMScore, cualquiera
// nulo deja c.RFM en nil (cliente sin puntuación).
func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	var rec, freq, mon *int
	var grade *string
	err := row.Scan(
		&c.ID, &c.CompanyID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.DateOfBirth,
		&c.SegmentationStatus, &c.TotalTransactions, &rec, &freq, &mon, &grade,
		&c.CLV, &c.TotalSpend, &c.LastPurchaseAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if rec != nil && freq != nil && mon != nil {
		score := entity.RFMScore{Recency: *rec, Frequency: *freq, Monetary: *mon}
		if grade != nil {
			score.Grade = *grade
		}
		c.RFM = &score
	}
	return &c, nil
}

// rfmColumns descompone el RFMScore en columnas nullable para INSERT/UPDATE.
func rfmColumns(s *entity.RFMScore) (rec, freq, mon *int, grade *string) {
	if s == nil {
		return nil, nil, nil, nil
	}
	return &s.Recency, &s.Frequency, &s.Monetary, &s.Grade
}
