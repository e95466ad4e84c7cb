package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// DeviceInfo describes one side of a device verification. Country and IP are
// what the approver is shown, so both are required on the wire.
type DeviceInfo struct {
	Browser     string `json:"browser"`
	CountryCode string `json:"country_code" validate:"required,iso3166_1_alpha2"`
	IPAddress   string `json:"ip_address" validate:"required,ip"`
}

// DeviceMismatchChallenge is issued when a login comes from an unrecognized
// device or location. It is cleared once approved, on reset, or on login.
type DeviceMismatchChallenge struct {
	Approver             *DeviceInfo `json:"approver,omitempty"`
	ConfirmationRequired *bool       `json:"confirmation_required,omitempty"`
	Requester            *DeviceInfo `json:"requester,omitempty"`
	Success              bool        `json:"success"`
	IssuedAt             time.Time   `json:"issued_at"`
}

// Clone returns a deep copy.
func (c *DeviceMismatchChallenge) Clone() *DeviceMismatchChallenge {
	if c == nil {
		return nil
	}

	out := *c
	if c.Approver != nil {
		approver := *c.Approver
		out.Approver = &approver
	}
	if c.Requester != nil {
		requester := *c.Requester
		out.Requester = &requester
	}
	if c.ConfirmationRequired != nil {
		confirm := *c.ConfirmationRequired
		out.ConfirmationRequired = &confirm
	}

	return &out
}

// CrossCountry reports whether approver and requester report different countries.
func (c *DeviceMismatchChallenge) CrossCountry() bool {
	if c == nil || c.Approver == nil || c.Requester == nil {
		return false
	}

	return c.Approver.CountryCode != c.Requester.CountryCode
}

// UserGeoData is the caller location resolved for the session.
type UserGeoData struct {
	IP          string     `json:"ip,omitempty"`
	CountryCode string     `json:"countryCode,omitempty"`
	State       string     `json:"state,omitempty"`
	Location    *orb.Point `json:"location,omitempty"`
}

// Valid reports whether the location, when present, is a real coordinate.
func (g *UserGeoData) Valid() bool {
	if g == nil || g.Location == nil {
		return true
	}

	lon, lat := g.Location.Lon(), g.Location.Lat()

	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func (g *UserGeoData) Clone() *UserGeoData {
	if g == nil {
		return nil
	}

	out := *g
	if g.Location != nil {
		p := *g.Location
		out.Location = &p
	}

	return &out
}
