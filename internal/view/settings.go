package view

import (
	"fmt"
	"io"

	"github.com/iliyamo/hotel-front-desk/internal/config"
)

// Settings renders the operator profile page.
func Settings(w io.Writer, p config.Profile) {
	fmt.Fprint(w, heading("Settings"))
	fmt.Fprintf(w, "Hotel:   %s\n", p.HotelName)
	fmt.Fprintf(w, "Name:    %s\n", p.AdminName)
	fmt.Fprintf(w, "Email:   %s\n", p.AdminEmail)
	fmt.Fprintf(w, "Phone:   %s\n", p.AdminPhone)
	fmt.Fprintf(w, "Role:    %s\n", p.AdminRole)
	fmt.Fprintf(w, "Address: %s\n\n", p.HotelAddress)
}
