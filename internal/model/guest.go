package model

import (
	"time"

	"github.com/google/uuid"
)

// RSVPStatus is a guest's attendance confirmation state.
type RSVPStatus string

const (
	RSVPStatusPending   RSVPStatus = "pending"
	RSVPStatusConfirmed RSVPStatus = "confirmed"
	RSVPStatusDeclined  RSVPStatus = "declined"
)

func (s RSVPStatus) IsValid() bool {
	switch s {
	case RSVPStatusPending, RSVPStatusConfirmed, RSVPStatusDeclined:
		return true
	}
	return false
}

type Guest struct {
	ID           int        `json:"id" db:"id"`
	GuestID      uuid.UUID  `json:"guest_id" db:"guest_id"`
	EventID      int        `json:"event_id" db:"event_id"`
	Name         string     `json:"name" db:"name"`
	Email        *string    `json:"email,omitempty" db:"email"`
	Phone        *string    `json:"phone,omitempty" db:"phone"`
	RSVPStatus   RSVPStatus `json:"rsvp_status" db:"rsvp_status"`
	PlusOnes     int        `json:"plus_ones" db:"plus_ones"`
	DietaryNotes *string    `json:"dietary_notes,omitempty" db:"dietary_notes"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

type UpdateGuestParams struct {
	Name         *string
	Email        *string
	Phone        *string
	RSVPStatus   *RSVPStatus
	PlusOnes     *int
	DietaryNotes *string
}
