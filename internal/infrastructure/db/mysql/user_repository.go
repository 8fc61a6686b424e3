package mysql

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/airlinehq/airline-api/internal/core/domain"
	"github.com/airlinehq/airline-api/internal/core/ports"
)

const userColumns = `user_id, email, password, role, first_name, last_name,
	passport_number, nationality, date_of_birth, contact_number, gender,
	created_at, updated_at`

// UserRepository is the MySQL implementation of ports.UserRepository.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context, page, limit int64) ([]*domain.User, int64, error) {
	offset := (page - 1) * limit

	users := []*domain.User{}
	err := r.db.SelectContext(ctx, &users,
		"SELECT "+userColumns+" FROM users ORDER BY last_name, first_name LIMIT ? OFFSET ?",
		limit, offset)
	if err != nil {
		return nil, 0, translate(err, "user not found")
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM users"); err != nil {
		return nil, 0, translate(err, "user not found")
	}
	return users, total, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user,
		"SELECT "+userColumns+" FROM users WHERE user_id = ?", id)
	if err != nil {
		return nil, translate(err, "user not found")
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user,
		"SELECT "+userColumns+" FROM users WHERE email = ?", email)
	if err != nil {
		return nil, translate(err, "user not found")
	}
	return &user, nil
}

func (r *UserRepository) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user,
		"SELECT "+userColumns+" FROM users WHERE contact_number = ?", phone)
	if err != nil {
		return nil, translate(err, "user not found")
	}
	return &user, nil
}

// EmailExists checks uniqueness. excludeID 0 matches no row, so creation
// checks pass it to consider every user.
func (r *UserRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var n int64
	err := r.db.GetContext(ctx, &n,
		"SELECT COUNT(*) FROM users WHERE email = ? AND user_id <> ?", email, excludeID)
	if err != nil {
		return false, translate(err, "user not found")
	}
	return n > 0, nil
}

func (r *UserRepository) PassportExists(ctx context.Context, passport string, excludeID int64) (bool, error) {
	var n int64
	err := r.db.GetContext(ctx, &n,
		"SELECT COUNT(*) FROM users WHERE passport_number = ? AND user_id <> ?", passport, excludeID)
	if err != nil {
		return false, translate(err, "user not found")
	}
	return n > 0, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (email, password, role, first_name, last_name,
			passport_number, nationality, date_of_birth, contact_number, gender)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.Email, user.PasswordHash, user.Role, user.FirstName, user.LastName,
		user.PassportNumber, user.Nationality, user.DateOfBirth,
		user.ContactNumber, user.Gender)
	if err != nil {
		return 0, translate(err, "user not found")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, translate(err, "user not found")
	}
	return id, nil
}

// Update applies the present fields inside a transaction: the row is checked
// first, then the dynamically built statement runs against it. With zero
// present fields no statement is issued at all.
func (r *UserRepository) Update(ctx context.Context, id int64, fields ports.UpdateUserFields) (bool, error) {
	var b updateBuilder
	if fields.Email != nil {
		b.set("email", *fields.Email)
	}
	if fields.PasswordHash != nil {
		b.set("password", *fields.PasswordHash)
	}
	if fields.FirstName != nil {
		b.set("first_name", *fields.FirstName)
	}
	if fields.LastName != nil {
		b.set("last_name", *fields.LastName)
	}
	if fields.PassportNumber != nil {
		b.set("passport_number", *fields.PassportNumber)
	}
	if fields.Nationality != nil {
		b.set("nationality", *fields.Nationality)
	}
	if fields.DateOfBirth != nil {
		b.set("date_of_birth", *fields.DateOfBirth)
	}
	if fields.ContactNumber != nil {
		b.set("contact_number", *fields.ContactNumber)
	}
	if fields.Gender != nil {
		b.set("gender", *fields.Gender)
	}
	if b.empty() {
		return false, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, translate(err, "user not found")
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	if err := tx.GetContext(ctx, &exists, "SELECT 1 FROM users WHERE user_id = ?", id); err != nil {
		return false, translate(err, "user not found")
	}

	stmt, args := b.query("users", "user_id", id)
	res, err := tx.ExecContext(ctx, stmt, args...)
	if err != nil {
		return false, translate(err, "user not found")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, translate(err, "user not found")
	}

	if err := tx.Commit(); err != nil {
		return false, translate(err, "user not found")
	}
	return affected > 0, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE user_id = ?", id)
	if err != nil {
		return false, translate(err, "user not found")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, translate(err, "user not found")
	}
	return affected > 0, nil
}

func (r *UserRepository) CountTickets(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM tickets WHERE user_id = ?", userID)
	if err != nil {
		return 0, translate(err, "user not found")
	}
	return n, nil
}
