// Package config loads the hotel profile shown on the settings page from
// environment variables, with a .env file as an optional local override.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Profile holds the hotel and operator details rendered on the settings
// page.  Each field corresponds to an environment variable; unset
// variables fall back to the stock profile.
type Profile struct {
	HotelName    string // FRONTDESK_HOTEL_NAME – hotel brand shown in the header
	AdminName    string // FRONTDESK_ADMIN_NAME – operator display name
	AdminEmail   string // FRONTDESK_ADMIN_EMAIL – operator contact email
	AdminPhone   string // FRONTDESK_ADMIN_PHONE – operator contact number
	AdminRole    string // FRONTDESK_ADMIN_ROLE – operator role label
	HotelAddress string // FRONTDESK_HOTEL_ADDRESS – hotel postal address
}

// Load reads the profile from the environment.  A .env file in the
// working directory is applied first when present; a missing file is not
// an error.  Unlike server configuration there are no required values
// here, so Load never fails.
func Load() Profile {
	_ = godotenv.Load()
	return Profile{
		HotelName:    envOrDefault("FRONTDESK_HOTEL_NAME", "Aruna"),
		AdminName:    envOrDefault("FRONTDESK_ADMIN_NAME", "Admin Hotel"),
		AdminEmail:   envOrDefault("FRONTDESK_ADMIN_EMAIL", "admin@arunahotel.com"),
		AdminPhone:   envOrDefault("FRONTDESK_ADMIN_PHONE", "081234567890"),
		AdminRole:    envOrDefault("FRONTDESK_ADMIN_ROLE", "Administrator"),
		HotelAddress: envOrDefault("FRONTDESK_HOTEL_ADDRESS", "Jl. Sudirman No. 123, Jakarta Selatan"),
	}
}

// envOrDefault returns the environment value for key, or the fallback when
// the variable is unset or blank.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}
