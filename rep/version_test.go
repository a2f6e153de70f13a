package rep

import "testing"

func TestHasPatchField(t *testing.T) {
	cases := []struct {
		major, minor uint32
		want         bool
	}{
		{868, 17, false},
		{868, 18, true},
		{868, 19, true},
		{869, 0, true},
		{1, 0, false},
	}
	for _, c := range cases {
		if got := HasPatchField(c.major, c.minor); got != c.want {
			t.Errorf("HasPatchField(%d, %d) = %v, want %v", c.major, c.minor, got, c.want)
		}
	}
}

func TestHasNameIndex(t *testing.T) {
	cases := []struct {
		v    Version
		want bool
	}{
		{NewVersion(868, 13, 0, false), false},
		{NewVersion(868, 14, 0, false), true},
		{NewVersion(868, 15, 0, true), true},
		{NewVersion(900, 0, 0, true), true},
	}
	for _, c := range cases {
		if got := c.v.HasNameIndex(); got != c.want {
			t.Errorf("%+v.HasNameIndex() = %v, want %v", c.v, got, c.want)
		}
	}
}
