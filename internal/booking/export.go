package booking

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/carxpresspanabo/carxpress-rental/internal/money"
)

// exportHeader is the bookings CSV column layout.
var exportHeader = []string{
	"Booking ID", "Status", "Vehicle", "Plate", "Customer", "Phone", "Email",
	"Pickup", "Return", "Days", "Rate/Day", "Driver", "Delivery", "Deposit",
	"Total", "Notes",
}

const exportTimeLayout = "2006-01-02 15:04"

// WriteCSV writes all bookings (most recent first) as CSV. Money columns
// are plain peso numbers so spreadsheets can sum them.
func (s *Service) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, b := range s.repo.Bookings() {
		driver := ""
		if b.WithDriver {
			driver = pesoNumber(b.DriverRatePerDay.Mul(b.Days))
		}

		row := []string{
			b.ID,
			string(b.Status),
			b.VehicleID,
			b.VehiclePlate,
			b.CustomerName,
			b.CustomerPhone,
			b.CustomerEmail,
			b.Pickup.Format(exportTimeLayout),
			b.Dropoff.Format(exportTimeLayout),
			strconv.Itoa(b.Days),
			pesoNumber(b.RatePerDay),
			driver,
			pesoNumber(b.DeliveryFee),
			pesoNumber(b.Deposit),
			pesoNumber(b.Total),
			b.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func pesoNumber(c money.Cents) string {
	return strconv.FormatFloat(c.Pesos(), 'f', -1, 64)
}
