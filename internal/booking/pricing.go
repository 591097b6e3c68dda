package booking

import "github.com/carxpresspanabo/carxpress-rental/internal/money"

// QuoteParams are the pricing inputs for a rental.
type QuoteParams struct {
	RatePerDay       money.Cents
	Days             int
	WithDriver       bool
	DriverRatePerDay money.Cents
	DeliveryFee      money.Cents
	Deposit          money.Cents
}

// Quote is the priced breakdown of a rental.
type Quote struct {
	Days        int         `json:"days"`
	Base        money.Cents `json:"base"`
	DriverFee   money.Cents `json:"driver_fee"`
	DeliveryFee money.Cents `json:"delivery_fee"`
	Deposit     money.Cents `json:"deposit"`
	Total       money.Cents `json:"total"`
}

// ComputeQuote prices a rental. It is a pass-through arithmetic
// contract, not a validator: the total may go negative when the deposit
// exceeds the charges, and nothing is clamped.
func ComputeQuote(p QuoteParams) Quote {
	base := p.RatePerDay.Mul(p.Days)

	var driverFee money.Cents
	if p.WithDriver {
		driverFee = p.DriverRatePerDay.Mul(p.Days)
	}

	return Quote{
		Days:        p.Days,
		Base:        base,
		DriverFee:   driverFee,
		DeliveryFee: p.DeliveryFee,
		Deposit:     p.Deposit,
		Total:       base + driverFee + p.DeliveryFee - p.Deposit,
	}
}
