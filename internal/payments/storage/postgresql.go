package storage

import (
	"database/sql"
	"fmt"
	"time"

	"tipton-reservations/internal/logger"
	"tipton-reservations/internal/models"

	_ "github.com/lib/pq"
)

type PostgreSQLStore struct {
	db  *sql.DB
	log *logger.Logger
}

// NewPostgreSQLStoreWithDB creates a payment store on an existing database
// connection, shared with the bun-managed tables.
func NewPostgreSQLStoreWithDB(db *sql.DB, log *logger.Logger) (*PostgreSQLStore, error) {
	store := &PostgreSQLStore{db: db, log: log}

	if err := store.initTables(); err != nil {
		log.Error("DATABASE", "Failed to initialize payment tables: "+err.Error())
		return nil, fmt.Errorf("failed to initialize payment tables: %w", err)
	}

	log.Info("DATABASE", "Payment storage initialized successfully")
	return store, nil
}

func (s *PostgreSQLStore) initTables() error {
	s.log.LogDatabase("MIGRATE", "payments", "Creating payments table if not exists")

	paymentsQuery := `
    CREATE TABLE IF NOT EXISTS payments (
        payment_id VARCHAR(36) PRIMARY KEY,
        booking_id VARCHAR(36) NOT NULL,
        user_id VARCHAR(36) NOT NULL,
        payment_intent_id VARCHAR(255) NOT NULL,
        amount DECIMAL(10,2) NOT NULL,
        currency VARCHAR(8) NOT NULL,
        status VARCHAR(32) NOT NULL,
        refunded_amount DECIMAL(10,2) NOT NULL DEFAULT 0,
        refunded_at TIMESTAMP,
        created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
        updated_at TIMESTAMP
    );
    `

	if _, err := s.db.Exec(paymentsQuery); err != nil {
		return fmt.Errorf("failed to create payments table: %w", err)
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_payments_booking_id ON payments(booking_id);",
		"CREATE INDEX IF NOT EXISTS idx_payments_intent_id ON payments(payment_intent_id);",
		"CREATE INDEX IF NOT EXISTS idx_payments_created_at ON payments(created_at);",
	}

	for _, indexQuery := range indexes {
		if _, err := s.db.Exec(indexQuery); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	s.log.LogDatabase("SUCCESS", "payments", "Payment tables and indexes ready")
	return nil
}

func (s *PostgreSQLStore) SavePayment(payment *models.Payment) error {
	s.log.LogDatabase("INSERT", "payments", fmt.Sprintf("Saving payment %s", payment.PaymentID))

	query := `
    INSERT INTO payments (
        payment_id, booking_id, user_id, payment_intent_id, amount, currency,
        status, refunded_amount, refunded_at, created_at
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `

	_, err := s.db.Exec(query,
		payment.PaymentID, payment.BookingID, payment.UserID, payment.PaymentIntentID,
		payment.Amount, payment.Currency, payment.Status, payment.RefundedAmount,
		nullableTime(payment.RefundedAt), payment.CreatedAt,
	)
	if err != nil {
		s.log.Error("DATABASE", fmt.Sprintf("Failed to save payment %s: %s", payment.PaymentID, err.Error()))
		return fmt.Errorf("failed to save payment: %w", err)
	}

	return nil
}

func (s *PostgreSQLStore) GetPayment(id string) (*models.Payment, error) {
	query := `
    SELECT payment_id, booking_id, user_id, payment_intent_id, amount, currency,
           status, refunded_amount, refunded_at, created_at, updated_at
    FROM payments WHERE payment_id = $1
    `
	return s.scanPayment(s.db.QueryRow(query, id), id)
}

// GetPaymentByIntentID looks a payment up by its external gateway reference.
// Used as the idempotency probe before inserting a new row.
func (s *PostgreSQLStore) GetPaymentByIntentID(intentID string) (*models.Payment, error) {
	query := `
    SELECT payment_id, booking_id, user_id, payment_intent_id, amount, currency,
           status, refunded_amount, refunded_at, created_at, updated_at
    FROM payments WHERE payment_intent_id = $1
    `
	return s.scanPayment(s.db.QueryRow(query, intentID), intentID)
}

func (s *PostgreSQLStore) scanPayment(row *sql.Row, ref string) (*models.Payment, error) {
	payment := &models.Payment{}
	var refundedAt, updatedAt sql.NullTime

	err := row.Scan(
		&payment.PaymentID, &payment.BookingID, &payment.UserID, &payment.PaymentIntentID,
		&payment.Amount, &payment.Currency, &payment.Status, &payment.RefundedAmount,
		&refundedAt, &payment.CreatedAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrPaymentNotFound
		}
		s.log.Error("DATABASE", fmt.Sprintf("Failed to get payment %s: %s", ref, err.Error()))
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	if refundedAt.Valid {
		payment.RefundedAt = refundedAt.Time
	}
	if updatedAt.Valid {
		payment.UpdatedAt = updatedAt.Time
	}
	return payment, nil
}

func (s *PostgreSQLStore) UpdatePayment(payment *models.Payment) error {
	s.log.LogDatabase("UPDATE", "payments", fmt.Sprintf("Updating payment %s", payment.PaymentID))

	query := `
    UPDATE payments SET
        status = $1, refunded_amount = $2, refunded_at = $3, updated_at = $4
    WHERE payment_id = $5
    `

	_, err := s.db.Exec(query,
		payment.Status, payment.RefundedAmount, nullableTime(payment.RefundedAt),
		time.Now().UTC(), payment.PaymentID,
	)
	if err != nil {
		s.log.Error("DATABASE", fmt.Sprintf("Failed to update payment %s: %s", payment.PaymentID, err.Error()))
		return fmt.Errorf("failed to update payment: %w", err)
	}

	return nil
}

// ListPaymentsByBooking returns a booking's payments most-recent-first, the
// order the refund walk consumes them in.
func (s *PostgreSQLStore) ListPaymentsByBooking(bookingID string) ([]*models.Payment, error) {
	query := `
    SELECT payment_id, booking_id, user_id, payment_intent_id, amount, currency,
           status, refunded_amount, refunded_at, created_at, updated_at
    FROM payments
    WHERE booking_id = $1
    ORDER BY created_at DESC
    `

	rows, err := s.db.Query(query, bookingID)
	if err != nil {
		s.log.Error("DATABASE", fmt.Sprintf("Failed to list payments: %s", err.Error()))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment := &models.Payment{}
		var refundedAt, updatedAt sql.NullTime

		err := rows.Scan(
			&payment.PaymentID, &payment.BookingID, &payment.UserID, &payment.PaymentIntentID,
			&payment.Amount, &payment.Currency, &payment.Status, &payment.RefundedAmount,
			&refundedAt, &payment.CreatedAt, &updatedAt,
		)
		if err != nil {
			s.log.Error("DATABASE", fmt.Sprintf("Failed to scan payment row: %s", err.Error()))
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}

		if refundedAt.Valid {
			payment.RefundedAt = refundedAt.Time
		}
		if updatedAt.Valid {
			payment.UpdatedAt = updatedAt.Time
		}
		payments = append(payments, payment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return payments, nil
}

func (s *PostgreSQLStore) Close() error {
	s.log.LogDatabase("CLOSE", "payments", "Closing payment store connection")
	return s.db.Close()
}

func (s *PostgreSQLStore) HealthCheck() error {
	return s.db.Ping()
}

func nullableTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}
