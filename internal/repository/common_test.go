package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"rsvp-service/config"
	"rsvp-service/internal/database"
	"rsvp-service/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	testDBOnce sync.Once
	testDB     *pgxpool.Pool
	testDBErr  error
)

const testSchema = `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE TABLE IF NOT EXISTS events (
		id SERIAL PRIMARY KEY,
		user_id INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		description TEXT,
		location TEXT,
		starts_at TIMESTAMPTZ NOT NULL,
		ends_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE TABLE IF NOT EXISTS guests (
		id SERIAL PRIMARY KEY,
		guest_id UUID NOT NULL,
		event_id INT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		email TEXT,
		phone TEXT,
		rsvp_status TEXT NOT NULL,
		plus_ones INT NOT NULL DEFAULT 0,
		dietary_notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE TABLE IF NOT EXISTS transport_preferences (
		id SERIAL PRIMARY KEY,
		event_id INT NOT NULL UNIQUE REFERENCES events(id) ON DELETE CASCADE,
		mode TEXT NOT NULL,
		provider_name TEXT,
		provider_phone TEXT,
		provider_email TEXT,
		instructions TEXT,
		pickup_provided BOOLEAN NOT NULL DEFAULT FALSE,
		dropoff_provided BOOLEAN NOT NULL DEFAULT FALSE,
		shuttle_provided BOOLEAN NOT NULL DEFAULT FALSE,
		flight_assistance BOOLEAN NOT NULL DEFAULT FALSE,
		flight_mode TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

// setupTestDB connects to the test database once, bootstraps the schema and
// truncates all tables. Skips when no test database is reachable.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	testDBOnce.Do(func() {
		cfg := config.LoadTestConfig()
		testDB, testDBErr = database.InitDatabase(&cfg.Database)
		if testDBErr != nil {
			return
		}
		_, testDBErr = testDB.Exec(context.Background(), testSchema)
	})
	if testDBErr != nil {
		t.Skipf("test database not available: %v", testDBErr)
	}

	_, err := testDB.Exec(context.Background(),
		"TRUNCATE transport_preferences, guests, events, users RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	return testDB
}

func createTestUser(t *testing.T, pool *pgxpool.Pool, email string) *model.User {
	t.Helper()
	user, err := NewUserRepository(pool).Create(context.Background(), &model.User{
		Name:         "Organizer",
		Email:        email,
		PasswordHash: "x",
	})
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

func createTestEvent(t *testing.T, pool *pgxpool.Pool, userID int, title string) *model.Event {
	t.Helper()
	event, err := NewEventRepository(pool).Create(context.Background(), &model.Event{
		UserID:   userID,
		Title:    title,
		StartsAt: time.Date(2026, 9, 12, 17, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2026, 9, 12, 23, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create test event: %v", err)
	}
	return event
}

func createTestGuest(t *testing.T, pool *pgxpool.Pool, eventID int, name string) *model.Guest {
	t.Helper()
	guest, err := NewGuestRepository(pool).Create(context.Background(), &model.Guest{
		GuestID:    uuid.New(),
		EventID:    eventID,
		Name:       name,
		RSVPStatus: model.RSVPStatusPending,
	})
	if err != nil {
		t.Fatalf("create test guest: %v", err)
	}
	return guest
}
