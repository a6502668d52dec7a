package earnings

import (
	"testing"

	"lalogistics-backend/internal/models"

	"github.com/shopspring/decimal"
)

func TestSPXEarnings(t *testing.T) {
	cases := []struct {
		quantity int
		sameDay  bool
		want     string
	}{
		{50, false, "25.00"},
		{100, false, "50.00"},
		{100, true, "100.00"},
		{150, true, "100.00"},
		{150, false, "50.00"},
		{1, true, "1.00"},
		{0, false, "0.00"},
	}

	for _, tc := range cases {
		got := Calculate(models.CourierSPX, tc.quantity, tc.sameDay)
		if got.StringFixed(2) != tc.want {
			t.Errorf("SPX(%d, sameDay=%v) = %s, want %s", tc.quantity, tc.sameDay, got.StringFixed(2), tc.want)
		}
	}
}

func TestSPXLinearBelowCap(t *testing.T) {
	rate := decimal.RequireFromString("0.50")
	for qty := 0; qty <= 100; qty++ {
		want := rate.Mul(decimal.NewFromInt(int64(qty)))
		got := Calculate(models.CourierSPX, qty, false)
		if !got.Equal(want) {
			t.Fatalf("SPX(%d, false) = %s, want %s", qty, got, want)
		}
	}
}

func TestSPXCapAtHundred(t *testing.T) {
	capBase := Calculate(models.CourierSPX, 100, false)
	capBonus := Calculate(models.CourierSPX, 100, true)
	for qty := 101; qty <= 300; qty += 17 {
		if got := Calculate(models.CourierSPX, qty, false); !got.Equal(capBase) {
			t.Fatalf("SPX(%d, false) = %s, want cap value %s", qty, got, capBase)
		}
		if got := Calculate(models.CourierSPX, qty, true); !got.Equal(capBonus) {
			t.Fatalf("SPX(%d, true) = %s, want cap value %s", qty, got, capBonus)
		}
	}
}

func TestFlashEarnings(t *testing.T) {
	cases := []struct {
		quantity int
		want     string
	}{
		{1, "3.00"},
		{10, "30.00"},
		{30, "90.00"},
		{31, "90.00"},
		{100, "90.00"},
	}

	for _, tc := range cases {
		got := Calculate(models.CourierFlash, tc.quantity, false)
		if got.StringFixed(2) != tc.want {
			t.Errorf("Flash(%d) = %s, want %s", tc.quantity, got.StringFixed(2), tc.want)
		}
	}
}

func TestFlashIgnoresSameDay(t *testing.T) {
	plain := Calculate(models.CourierFlash, 20, false)
	flagged := Calculate(models.CourierFlash, 20, true)
	if !plain.Equal(flagged) {
		t.Fatalf("Flash same-day flag changed earning: %s vs %s", plain, flagged)
	}
}

func TestUnknownCourierEarnsNothing(t *testing.T) {
	got := Calculate(models.Courier("GrabExpress"), 50, true)
	if !got.IsZero() {
		t.Fatalf("unknown courier earned %s, want 0", got)
	}
}

func TestNegativeQuantityTreatedAsZero(t *testing.T) {
	if got := Calculate(models.CourierSPX, -5, true); !got.IsZero() {
		t.Fatalf("SPX(-5) = %s, want 0", got)
	}
}

// Repeated cent-level additions must not drift, which is the reason money
// is decimal rather than float64 throughout.
func TestRepeatedSumIsExact(t *testing.T) {
	one := Calculate(models.CourierSPX, 1, false) // 0.50
	sum := decimal.Zero
	for i := 0; i < 1000; i++ {
		sum = sum.Add(one)
	}
	if sum.StringFixed(2) != "500.00" {
		t.Fatalf("1000 x 0.50 = %s, want 500.00", sum.StringFixed(2))
	}
}
