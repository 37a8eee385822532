package view

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/iliyamo/hotel-front-desk/internal/report"
	"github.com/iliyamo/hotel-front-desk/internal/store"
)

// Reports renders the analytics page: key metrics, the per-room-type
// breakdown and today's arrival/departure activity. The current day is a
// parameter so the page stays reproducible in tests.
func Reports(w io.Writer, st *store.Store, today time.Time) {
	guests := st.Guests()
	rooms := st.Rooms()
	reservations := st.Reservations()

	fmt.Fprint(w, heading("Reports"))
	fmt.Fprintf(w, "Revenue:            %s\n", rupiah(report.TotalRevenue(reservations)))
	fmt.Fprintf(w, "Reservations:       %d\n", len(reservations))
	fmt.Fprintf(w, "Occupancy:          %d%%\n", report.OccupancyRate(rooms))
	fmt.Fprintf(w, "Average stay:       %.1f nights\n", report.AverageStayNights(reservations))
	fmt.Fprintf(w, "Repeat guests:      %d of %d\n\n", report.RepeatGuestCount(guests), len(guests))

	fmt.Fprintln(w, "Bookings by room type")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tBOOKINGS\tREVENUE")
	for _, s := range report.RoomTypeStats(reservations) {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", s.Type, s.Bookings, rupiah(s.Revenue))
	}
	tw.Flush()

	fmt.Fprintf(w, "\nToday (%s)\n", day(today))
	fmt.Fprintf(w, "Arrivals:   %d\n", report.ArrivalsOn(reservations, today))
	fmt.Fprintf(w, "Departures: %d\n", report.DeparturesOn(reservations, today))
	fmt.Fprintf(w, "Revenue:    %s\n\n", rupiah(report.ArrivalRevenueOn(reservations, today)))
}
