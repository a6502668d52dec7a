package models

import "testing"

func TestCourierValid(t *testing.T) {
	cases := []struct {
		courier Courier
		want    bool
	}{
		{CourierSPX, true},
		{CourierFlash, true},
		{Courier("spx"), false},
		{Courier("GrabExpress"), false},
		{Courier(""), false},
	}

	for _, tc := range cases {
		if got := tc.courier.Valid(); got != tc.want {
			t.Errorf("Courier(%q).Valid() = %v, want %v", tc.courier, got, tc.want)
		}
	}
}
