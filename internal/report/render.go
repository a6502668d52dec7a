package report

import (
	"strconv"

	"lalogistics-backend/internal/models"

	"github.com/shopspring/decimal"
)

const currencySymbol = "₱"

// Column headers shared by every artifact, in presentation order.
var columns = []string{
	"Task ID", "Seller ID", "Courier", "Quantity", "Date", "Picked Up Same Day", "Earning",
}

// rows flattens the report entries into the shared seven-column table that
// the PDF, spreadsheet and email renderers all consume. Pure: the report is
// not mutated and repeated calls produce identical output.
func rows(rep *Aggregated) [][]string {
	out := make([][]string, 0, len(rep.Entries))
	for _, e := range rep.Entries {
		out = append(out, []string{
			e.TaskID,
			e.SellerID,
			string(e.Courier),
			strconv.Itoa(e.Quantity),
			e.Date.Format("2006-01-02"),
			sameDayCell(e),
			formatEarning(e.TotalEarning),
		})
	}
	return out
}

// sameDayCell renders the pickup flag. Same-day only means something for
// SPX; other couriers show N/A regardless of the stored boolean.
func sameDayCell(e models.Parcel) string {
	if e.Courier != models.CourierSPX {
		return "N/A"
	}
	if e.PickedUpSameDay {
		return "Yes"
	}
	return "No"
}

func formatEarning(d decimal.Decimal) string {
	return currencySymbol + d.StringFixed(2)
}
