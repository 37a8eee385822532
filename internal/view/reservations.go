package view

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/iliyamo/hotel-front-desk/internal/model"
	"github.com/iliyamo/hotel-front-desk/internal/report"
	"github.com/iliyamo/hotel-front-desk/internal/store"
)

// Reservations renders the reservation management page: status tiles and
// the reservation list, optionally narrowed by a search term matching
// guest name, room number or email.
func Reservations(w io.Writer, st *store.Store, term string) {
	all := st.Reservations()
	counts := report.StatusCounts(all)

	fmt.Fprint(w, heading("Reservations"))
	fmt.Fprintf(w, "Total: %d  Confirmed: %d  Pending: %d  Cancelled: %d  Revenue: %s\n\n",
		len(all),
		counts[model.ReservationConfirmed],
		counts[model.ReservationPending],
		counts[model.ReservationCancelled],
		rupiah(report.TotalRevenue(all)))

	listed := st.SearchReservations(term)
	if len(listed) == 0 {
		fmt.Fprintln(w, "No reservations yet.")
		fmt.Fprintln(w)
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GUEST\tEMAIL\tROOM\tTYPE\tCHECK-IN\tCHECK-OUT\tNIGHTS\tSTATUS\tTOTAL")
	for _, r := range listed {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			r.GuestName, r.Email, r.RoomNumber, r.RoomType,
			day(r.CheckIn), day(r.CheckOut), r.Nights, r.Status, rupiah(r.TotalAmount))
	}
	tw.Flush()
	fmt.Fprintln(w)
}
