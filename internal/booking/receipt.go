package booking

import (
	"fmt"
	"html/template"
	"io"

	"github.com/carxpresspanabo/carxpress-rental/internal/store"
	"github.com/carxpresspanabo/carxpress-rental/pkg/common"
)

// ReceiptData feeds the printable receipt template.
type ReceiptData struct {
	Booking store.Booking
	Company store.Settings
}

// receiptTemplate is a standalone printable document; it invokes the
// browser print dialog on load, matching how front-desk staff hand the
// customer a copy.
var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
<title>Booking {{.Booking.ID}}</title>
<style>
body{font-family:ui-sans-serif,system-ui;padding:24px}
h1{margin:0}
.row{display:flex;gap:24px}
.box{border:1px solid #e5e7eb;border-radius:12px;padding:12px;margin-top:12px}
table{width:100%;border-collapse:collapse}
td,th{border-top:1px solid #e5e7eb;padding:8px;text-align:left}
</style>
</head>
<body>
<h1>{{if .Company.CompanyName}}{{.Company.CompanyName}}{{else}}CarXpress{{end}} Booking</h1>
{{if .Company.CompanyAddress}}<p>{{.Company.CompanyAddress}}{{if .Company.CompanyPhone}} &middot; {{.Company.CompanyPhone}}{{end}}</p>{{end}}
<p><b>ID:</b> {{.Booking.ID}} &nbsp; <b>Status:</b> {{.Booking.Status}}</p>
<div class="row">
  <div class="box" style="flex:1">
    <h3>Customer</h3>
    <p>{{.Booking.CustomerName}}<br>{{.Booking.CustomerPhone}}{{if .Booking.CustomerEmail}}<br>{{.Booking.CustomerEmail}}{{end}}</p>
  </div>
  <div class="box" style="flex:1">
    <h3>Vehicle</h3>
    <p>{{.Booking.VehicleID}} - {{.Booking.VehiclePlate}}<br>Rate/day: {{.Booking.RatePerDay}}</p>
  </div>
</div>
<div class="box">
  <h3>Schedule</h3>
  <table>
    <tr><th>Pickup</th><td>{{.Booking.Pickup.Format "Jan 2, 2006 3:04 PM"}}</td></tr>
    <tr><th>Return</th><td>{{.Booking.Dropoff.Format "Jan 2, 2006 3:04 PM"}}</td></tr>
    <tr><th>Days</th><td>{{.Booking.Days}}</td></tr>
  </table>
</div>
<div class="box">
  <h3>Charges</h3>
  <table>
    <tr><th>Base</th><td>{{.Booking.RatePerDay}} x {{.Booking.Days}}</td></tr>
    <tr><th>Driver</th><td>{{if .Booking.WithDriver}}{{.DriverFee}}{{else}}-{{end}}</td></tr>
    <tr><th>Delivery</th><td>{{.Booking.DeliveryFee}}</td></tr>
    <tr><th>Deposit</th><td>{{.Booking.Deposit}}</td></tr>
    <tr><th><b>Total</b></th><td><b>{{.Booking.Total}}</b></td></tr>
  </table>
</div>
<script>window.print()</script>
</body>
</html>`))

// DriverFee is the total driver charge over the rental.
func (d ReceiptData) DriverFee() string {
	return d.Booking.DriverRatePerDay.Mul(d.Booking.Days).String()
}

// WriteReceipt renders the printable receipt for a booking.
func (s *Service) WriteReceipt(w io.Writer, id string) error {
	b, ok := s.repo.FindBooking(id)
	if !ok {
		return common.NewNotFoundError("booking not found", nil)
	}

	data := ReceiptData{Booking: b, Company: s.repo.Settings()}
	if err := receiptTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render receipt: %w", err)
	}
	return nil
}
