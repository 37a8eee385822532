// Command frontdesk is the application shell of the hotel front-desk
// dashboard.  It owns the in-memory store, seeds it with the sample data
// set and renders each page in turn.  There is no server and no
// persistence: the process is a single-user state holder and the views
// below are its only consumers.
package main

import (
	"log"
	"os"
	"time"

	"github.com/iliyamo/hotel-front-desk/internal/booking"
	"github.com/iliyamo/hotel-front-desk/internal/config"
	"github.com/iliyamo/hotel-front-desk/internal/store"
	"github.com/iliyamo/hotel-front-desk/internal/view"
)

func main() {
	profile := config.Load()

	st := store.New()
	st.Seed()

	if err := booking.CheckAvailability(st); err != nil {
		log.Printf("warning: %v", err)
	}

	out := os.Stdout
	view.Dashboard(out, st)
	view.Reservations(out, st, "")
	view.Rooms(out, st, "", "")
	view.Guests(out, st, "")
	view.Reports(out, st, time.Now())
	view.Settings(out, profile)
}
