package twoprobe

import "testing"

func TestRoute_Deterministic(t *testing.T) {
	sums := []uint64{0, 1, 42, 1<<32 + 7, ^uint64(0)}

	for _, sum := range sums {
		a1, a2 := route(sum, 17)
		b1, b2 := route(sum, 17)

		if a1 != b1 || a2 != b2 {
			t.Errorf("route(%d, 17) not deterministic: (%d,%d) vs (%d,%d)", sum, a1, a2, b1, b2)
		}
	}
}

func TestRoute_IndicesInRange(t *testing.T) {
	capacities := []int{1, 2, 7, 8, 100, 1 << 16}

	for _, n := range capacities {
		for sum := uint64(0); sum < 1000; sum++ {
			idx1, idx2 := route(sum*2654435761, n)

			if idx1 < 0 || idx1 >= n {
				t.Fatalf("route(%d, %d) primary index %d out of range", sum, n, idx1)
			}
			if idx2 < 0 || idx2 >= n {
				t.Fatalf("route(%d, %d) secondary index %d out of range", sum, n, idx2)
			}
		}
	}
}

func TestRoute_SingleSlotTable(t *testing.T) {
	idx1, idx2 := route(987654321, 1)

	if idx1 != 0 || idx2 != 0 {
		t.Errorf("expected both indices 0 for capacity 1, got (%d, %d)", idx1, idx2)
	}
}

func TestRoute_SecondaryUsuallyDiffers(t *testing.T) {
	// The multiplier cannot guarantee distinct indices for every sum, but
	// for a healthy table most keys should get two genuine candidates.
	const n = 64

	same := 0
	for sum := uint64(1); sum <= 10000; sum++ {
		idx1, idx2 := route(sum*0x9E3779B1+11, n)
		if idx1 == idx2 {
			same++
		}
	}

	if same > 1000 {
		t.Errorf("secondary index equals primary for %d of 10000 sums, expected far fewer", same)
	}
}
