package terrain

import (
	"errors"
	"testing"
)

func TestClassifyDefaultTable(t *testing.T) {
	table := DefaultTable()
	tests := []struct {
		e, p int
		want Kind
	}{
		{0, 0, Sea},
		{2, 2, Sea},
		{3, 0, Desert},
		{3, 1, Grassland},
		{4, 0, Steppe},
		{4, 2, Forest},
		{5, 1, Forest},
		{6, 0, Mountains},
		{9, 2, Mountains},
	}
	for _, tc := range tests {
		got, err := table.Classify(tc.e, tc.p)
		if err != nil {
			t.Fatalf("Classify(%d,%d) unexpected error: %v", tc.e, tc.p, err)
		}
		if got != tc.want {
			t.Errorf("Classify(%d,%d) = %s, want %s", tc.e, tc.p, got, tc.want)
		}
	}
}

func TestClassifyOutOfRange(t *testing.T) {
	table := DefaultTable()
	cases := [][2]int{
		{-1, 0},
		{ElevationBuckets, 0},
		{0, -1},
		{0, PrecipitationBuckets},
	}
	for _, c := range cases {
		if _, err := table.Classify(c[0], c[1]); !errors.Is(err, ErrBucketOutOfRange) {
			t.Errorf("Classify(%d,%d) err = %v, want ErrBucketOutOfRange", c[0], c[1], err)
		}
	}
}

func TestClassifyIsPure(t *testing.T) {
	table := DefaultTable()
	first := map[[2]int]Kind{}
	for e := 0; e < ElevationBuckets; e++ {
		for p := 0; p < PrecipitationBuckets; p++ {
			k, _ := table.Classify(e, p)
			first[[2]int{e, p}] = k
		}
	}
	for e := ElevationBuckets - 1; e >= 0; e-- {
		for p := PrecipitationBuckets - 1; p >= 0; p-- {
			k, _ := table.Classify(e, p)
			if k != first[[2]int{e, p}] {
				t.Fatalf("Classify(%d,%d) changed between calls", e, p)
			}
		}
	}
}

func TestDescriptorsShared(t *testing.T) {
	if Lookup(Forest) != Lookup(Forest) {
		t.Fatal("descriptors must be shared references")
	}
	if Sea.IsLand() {
		t.Fatal("sea must not be land")
	}
	if Mountains.Habitable() || !Grassland.Habitable() {
		t.Fatal("habitability mismatch")
	}
	for _, k := range Kinds() {
		typ := Lookup(k)
		if typ.Kind != k {
			t.Errorf("descriptor for %d reports kind %d", k, typ.Kind)
		}
		if typ.Fertility < 0 || typ.Fertility > 5 {
			t.Errorf("%s fertility %d out of range", typ.Name, typ.Fertility)
		}
	}
}
