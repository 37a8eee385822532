// Package view renders the front-desk pages as plain text.  Views are
// presentational only: they read collections and derived statistics and
// never mutate the store.  Each page mirrors one screen of the dashboard.
package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// rupiah formats a whole-rupiah amount with dot thousand separators, e.g.
// 2400000 becomes "Rp 2.400.000".
func rupiah(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := false
	if amount < 0 {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	if neg {
		return "Rp -" + string(out)
	}
	return "Rp " + string(out)
}

// day formats a stored date in the wire format used across the app.
func day(t time.Time) string {
	return t.Format(time.DateOnly)
}

// heading prints a page title with an underline of matching width.
func heading(title string) string {
	return fmt.Sprintf("%s\n%s\n", title, strings.Repeat("=", len(title)))
}
