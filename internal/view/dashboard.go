package view

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/iliyamo/hotel-front-desk/internal/report"
	"github.com/iliyamo/hotel-front-desk/internal/store"
)

// Dashboard renders the summary page: headline statistics and the most
// recent reservations.
func Dashboard(w io.Writer, st *store.Store) {
	guests := st.Guests()
	rooms := st.Rooms()
	reservations := st.Reservations()

	fmt.Fprint(w, heading("Dashboard"))
	fmt.Fprintf(w, "Guests:          %d\n", len(guests))
	fmt.Fprintf(w, "Available rooms: %d of %d\n", report.AvailableRoomCount(rooms), len(rooms))
	fmt.Fprintf(w, "Reservations:    %d\n", len(reservations))
	fmt.Fprintf(w, "Occupancy:       %d%%\n", report.OccupancyRate(rooms))
	fmt.Fprintf(w, "Revenue:         %s\n\n", rupiah(report.TotalRevenue(reservations)))

	fmt.Fprintln(w, "Recent reservations")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GUEST\tROOM\tCHECK-IN\tCHECK-OUT\tSTATUS\tTOTAL")
	recent := reservations
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	for i := len(recent) - 1; i >= 0; i-- {
		r := recent[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.GuestName, r.RoomNumber, day(r.CheckIn), day(r.CheckOut), r.Status, rupiah(r.TotalAmount))
	}
	tw.Flush()
	fmt.Fprintln(w)
}
