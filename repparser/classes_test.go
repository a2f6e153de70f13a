package repparser

import "testing"

func TestLocationGateCapabilities(t *testing.T) {
	cases := []struct {
		className        string
		wantLocation     bool
		wantRotation     bool
	}{
		{"TAGame.Ball_TA\x00", true, true},
		{"TAGame.CarComponent_Boost_TA\x00", true, false},
		{"TAGame.PRI_TA\x00", false, false},
	}

	for _, c := range cases {
		if classesWithLocation[c.className] != c.wantLocation {
			t.Errorf("classesWithLocation[%q] = %v, want %v", c.className, classesWithLocation[c.className], c.wantLocation)
		}
		if classesWithRotation[c.className] != c.wantRotation {
			t.Errorf("classesWithRotation[%q] = %v, want %v", c.className, classesWithRotation[c.className], c.wantRotation)
		}
	}
}
