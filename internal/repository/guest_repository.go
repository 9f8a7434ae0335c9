package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rsvp-service/internal/model"
	apperrors "rsvp-service/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GuestRepository interface {
	Create(ctx context.Context, guest *model.Guest) (*model.Guest, error)
	ListByEventID(ctx context.Context, eventID int) ([]*model.Guest, error)
	// FindByIDForOwner resolves a guest only when its event belongs to the
	// given owner. Missing and inaccessible guests look the same.
	FindByIDForOwner(ctx context.Context, id, ownerID int) (*model.Guest, error)
	Update(ctx context.Context, id int, params model.UpdateGuestParams) (*model.Guest, error)
	Delete(ctx context.Context, id int) error
}

type GuestRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewGuestRepository(pool *pgxpool.Pool) GuestRepository {
	return &GuestRepositoryImpl{
		pool: pool,
	}
}

func (r *GuestRepositoryImpl) Create(ctx context.Context, guest *model.Guest) (*model.Guest, error) {
	query := `
		INSERT INTO guests (guest_id, event_id, name, email, phone, rsvp_status, plus_ones, dietary_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, guest_id, event_id, name, email, phone, rsvp_status, plus_ones, dietary_notes, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		guest.GuestID, guest.EventID, guest.Name, guest.Email, guest.Phone,
		guest.RSVPStatus, guest.PlusOnes, guest.DietaryNotes,
	).Scan(
		&guest.ID,
		&guest.GuestID,
		&guest.EventID,
		&guest.Name,
		&guest.Email,
		&guest.Phone,
		&guest.RSVPStatus,
		&guest.PlusOnes,
		&guest.DietaryNotes,
		&guest.CreatedAt,
		&guest.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return guest, nil
}

func (r *GuestRepositoryImpl) ListByEventID(ctx context.Context, eventID int) ([]*model.Guest, error) {
	query := `
		SELECT id, guest_id, event_id, name, email, phone, rsvp_status, plus_ones, dietary_notes, created_at, updated_at
		FROM guests
		WHERE event_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	guests := make([]*model.Guest, 0)
	for rows.Next() {
		var guest model.Guest
		err := rows.Scan(
			&guest.ID,
			&guest.GuestID,
			&guest.EventID,
			&guest.Name,
			&guest.Email,
			&guest.Phone,
			&guest.RSVPStatus,
			&guest.PlusOnes,
			&guest.DietaryNotes,
			&guest.CreatedAt,
			&guest.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		guests = append(guests, &guest)
	}
	return guests, nil
}

func (r *GuestRepositoryImpl) FindByIDForOwner(ctx context.Context, id, ownerID int) (*model.Guest, error) {
	query := `
		SELECT g.id, g.guest_id, g.event_id, g.name, g.email, g.phone, g.rsvp_status, g.plus_ones, g.dietary_notes, g.created_at, g.updated_at
		FROM guests g
		JOIN events e ON e.id = g.event_id
		WHERE g.id = $1 AND e.user_id = $2
	`

	var guest model.Guest
	err := r.pool.QueryRow(ctx, query, id, ownerID).Scan(
		&guest.ID,
		&guest.GuestID,
		&guest.EventID,
		&guest.Name,
		&guest.Email,
		&guest.Phone,
		&guest.RSVPStatus,
		&guest.PlusOnes,
		&guest.DietaryNotes,
		&guest.CreatedAt,
		&guest.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrGuestNotFound
		}
		return nil, err
	}

	return &guest, nil
}

func (r *GuestRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateGuestParams) (*model.Guest, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *params.Name)
		argPos++
	}

	if params.Email != nil {
		sets = append(sets, fmt.Sprintf("email = $%d", argPos))
		args = append(args, *params.Email)
		argPos++
	}

	if params.Phone != nil {
		sets = append(sets, fmt.Sprintf("phone = $%d", argPos))
		args = append(args, *params.Phone)
		argPos++
	}

	if params.RSVPStatus != nil {
		sets = append(sets, fmt.Sprintf("rsvp_status = $%d", argPos))
		args = append(args, *params.RSVPStatus)
		argPos++
	}

	if params.PlusOnes != nil {
		sets = append(sets, fmt.Sprintf("plus_ones = $%d", argPos))
		args = append(args, *params.PlusOnes)
		argPos++
	}

	if params.DietaryNotes != nil {
		sets = append(sets, fmt.Sprintf("dietary_notes = $%d", argPos))
		args = append(args, *params.DietaryNotes)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE guests
		SET %s
		WHERE id = $%d
		RETURNING id, guest_id, event_id, name, email, phone, rsvp_status, plus_ones, dietary_notes, created_at, updated_at
	`, strings.Join(sets, ", "), argPos)

	var guest model.Guest

	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&guest.ID,
		&guest.GuestID,
		&guest.EventID,
		&guest.Name,
		&guest.Email,
		&guest.Phone,
		&guest.RSVPStatus,
		&guest.PlusOnes,
		&guest.DietaryNotes,
		&guest.CreatedAt,
		&guest.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrGuestNotFound
		}
		return nil, err
	}

	return &guest, nil
}

func (r *GuestRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM guests
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrGuestNotFound
	}

	return nil
}
