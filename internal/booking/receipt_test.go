package booking

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carxpresspanabo/carxpress-rental/internal/money"
	"github.com/carxpresspanabo/carxpress-rental/internal/store"
	"github.com/carxpresspanabo/carxpress-rental/pkg/common"
)

func TestWriteReceipt(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.repo.UpdateSettings(ctx, store.Settings{
		DriverRatePerDay: money.FromPesos(800),
		CompanyName:      "CarXpress Panabo",
		CompanyAddress:   "Panabo City, Davao del Norte",
		CompanyPhone:     "0917 111 2222",
	}))

	b, err := s.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.WriteReceipt(&buf, b.ID))
	html := buf.String()

	require.Contains(t, html, "CarXpress Panabo")
	require.Contains(t, html, "Panabo City, Davao del Norte")
	require.Contains(t, html, b.ID)
	require.Contains(t, html, "Reserved")
	require.Contains(t, html, "Maria Santos")
	require.Contains(t, html, "ABC 1234")
	require.Contains(t, html, "₱1,500")
	require.Contains(t, html, "₱2,400") // driver charge over three days
	require.Contains(t, html, "₱6,600")
	require.Contains(t, html, "window.print()")
}

func TestWriteReceipt_NotFound(t *testing.T) {
	s := newTestService(t)

	var buf bytes.Buffer
	err := s.WriteReceipt(&buf, "BK-ZZZZZZ")
	require.Error(t, err)

	appErr, ok := err.(*common.AppError)
	require.True(t, ok)
	require.Equal(t, 404, appErr.Status)
}
