package repository

import (
	"context"

	"rsvp-service/internal/model"
	apperrors "rsvp-service/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransportRepository interface {
	// Upsert writes the single transport-preference row for an event,
	// replacing any previous wizard save.
	Upsert(ctx context.Context, pref *model.TransportPreference) (*model.TransportPreference, error)
	FindByEventID(ctx context.Context, eventID int) (*model.TransportPreference, error)
}

type TransportRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTransportRepository(pool *pgxpool.Pool) TransportRepository {
	return &TransportRepositoryImpl{
		pool: pool,
	}
}

func (r *TransportRepositoryImpl) Upsert(ctx context.Context, pref *model.TransportPreference) (*model.TransportPreference, error) {
	query := `
		INSERT INTO transport_preferences
			(event_id, mode, provider_name, provider_phone, provider_email, instructions,
			 pickup_provided, dropoff_provided, shuttle_provided, flight_assistance, flight_mode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (event_id) DO UPDATE SET
			mode = EXCLUDED.mode,
			provider_name = EXCLUDED.provider_name,
			provider_phone = EXCLUDED.provider_phone,
			provider_email = EXCLUDED.provider_email,
			instructions = EXCLUDED.instructions,
			pickup_provided = EXCLUDED.pickup_provided,
			dropoff_provided = EXCLUDED.dropoff_provided,
			shuttle_provided = EXCLUDED.shuttle_provided,
			flight_assistance = EXCLUDED.flight_assistance,
			flight_mode = EXCLUDED.flight_mode,
			updated_at = now()
		RETURNING id, event_id, mode, provider_name, provider_phone, provider_email, instructions,
			pickup_provided, dropoff_provided, shuttle_provided, flight_assistance, flight_mode,
			created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		pref.EventID, pref.Mode, pref.ProviderName, pref.ProviderPhone, pref.ProviderEmail,
		pref.Instructions, pref.PickupProvided, pref.DropoffProvided, pref.ShuttleProvided,
		pref.FlightAssistance, pref.FlightMode,
	).Scan(
		&pref.ID,
		&pref.EventID,
		&pref.Mode,
		&pref.ProviderName,
		&pref.ProviderPhone,
		&pref.ProviderEmail,
		&pref.Instructions,
		&pref.PickupProvided,
		&pref.DropoffProvided,
		&pref.ShuttleProvided,
		&pref.FlightAssistance,
		&pref.FlightMode,
		&pref.CreatedAt,
		&pref.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return pref, nil
}

func (r *TransportRepositoryImpl) FindByEventID(ctx context.Context, eventID int) (*model.TransportPreference, error) {
	query := `
		SELECT id, event_id, mode, provider_name, provider_phone, provider_email, instructions,
			pickup_provided, dropoff_provided, shuttle_provided, flight_assistance, flight_mode,
			created_at, updated_at
		FROM transport_preferences
		WHERE event_id = $1
	`

	var pref model.TransportPreference
	err := r.pool.QueryRow(ctx, query, eventID).Scan(
		&pref.ID,
		&pref.EventID,
		&pref.Mode,
		&pref.ProviderName,
		&pref.ProviderPhone,
		&pref.ProviderEmail,
		&pref.Instructions,
		&pref.PickupProvided,
		&pref.DropoffProvided,
		&pref.ShuttleProvided,
		&pref.FlightAssistance,
		&pref.FlightMode,
		&pref.CreatedAt,
		&pref.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTransportNotFound
		}
		return nil, err
	}

	return &pref, nil
}
