package model

import "time"

// TransportMode is how guest transport is arranged for an event.
type TransportMode string

const (
	TransportModeNone         TransportMode = "none"
	TransportModeProvided     TransportMode = "provided"
	TransportModeSelfArranged TransportMode = "self-arranged"
)

func (m TransportMode) IsValid() bool {
	switch m {
	case TransportModeNone, TransportModeProvided, TransportModeSelfArranged:
		return true
	}
	return false
}

// FlightMode says which flight legs the organizer coordinates for guests.
type FlightMode string

const (
	FlightModeNone      FlightMode = "none"
	FlightModeArrival   FlightMode = "arrival"
	FlightModeDeparture FlightMode = "departure"
	FlightModeBoth      FlightMode = "both"
)

func (m FlightMode) IsValid() bool {
	switch m {
	case FlightModeNone, FlightModeArrival, FlightModeDeparture, FlightModeBoth:
		return true
	}
	return false
}

// TransportPreference captures the transport step of the event setup wizard.
// One row per event, upserted on every save.
type TransportPreference struct {
	ID               int           `json:"id" db:"id"`
	EventID          int           `json:"event_id" db:"event_id"`
	Mode             TransportMode `json:"mode" db:"mode"`
	ProviderName     *string       `json:"provider_name,omitempty" db:"provider_name"`
	ProviderPhone    *string       `json:"provider_phone,omitempty" db:"provider_phone"`
	ProviderEmail    *string       `json:"provider_email,omitempty" db:"provider_email"`
	Instructions     *string       `json:"instructions,omitempty" db:"instructions"`
	PickupProvided   bool          `json:"pickup_provided" db:"pickup_provided"`
	DropoffProvided  bool          `json:"dropoff_provided" db:"dropoff_provided"`
	ShuttleProvided  bool          `json:"shuttle_provided" db:"shuttle_provided"`
	FlightAssistance bool          `json:"flight_assistance" db:"flight_assistance"`
	FlightMode       FlightMode    `json:"flight_mode" db:"flight_mode"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at" db:"updated_at"`
}
