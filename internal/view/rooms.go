package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/iliyamo/hotel-front-desk/internal/model"
	"github.com/iliyamo/hotel-front-desk/internal/store"
)

// Rooms renders the room overview page, optionally narrowed by a search
// term (room number or type) and a status filter.
func Rooms(w io.Writer, st *store.Store, term string, status model.RoomStatus) {
	fmt.Fprint(w, heading("Rooms"))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NUMBER\tTYPE\tPRICE/NIGHT\tSTATUS\tCAPACITY\tAMENITIES")
	for _, r := range st.FilterRooms(term, status) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			r.Number, r.Type, rupiah(r.Price), r.Status, r.Capacity, strings.Join(r.Amenities, ", "))
	}
	tw.Flush()
	fmt.Fprintln(w)
}
