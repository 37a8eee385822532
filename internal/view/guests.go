package view

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/iliyamo/hotel-front-desk/internal/model"
	"github.com/iliyamo/hotel-front-desk/internal/report"
	"github.com/iliyamo/hotel-front-desk/internal/store"
)

// Guests renders the guest directory page: status tiles and the guest
// list, optionally narrowed by a search term matching name, email or
// phone.
func Guests(w io.Writer, st *store.Store, term string) {
	all := st.Guests()

	fmt.Fprint(w, heading("Guests"))
	fmt.Fprintf(w, "Total: %d  Active: %d  VIP: %d\n\n",
		len(all),
		report.GuestStatusCount(all, model.GuestActive),
		report.GuestStatusCount(all, model.GuestVIP))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEMAIL\tPHONE\tJOINED\tSTAYS\tSPENT\tLAST VISIT\tSTATUS")
	for _, g := range st.SearchGuests(term) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			g.Name, g.Email, g.Phone, day(g.JoinDate),
			g.TotalReservations, rupiah(g.TotalSpent), day(g.LastVisit), g.Status)
	}
	tw.Flush()
	fmt.Fprintln(w)
}
