package dice

import (
	"sync"
	"testing"
)

func TestNewDealerValidation(t *testing.T) {
	if _, err := NewDealer(0, 6, nil); err != ErrInvalidCount {
		t.Errorf("count 0: got %v, want ErrInvalidCount", err)
	}
	if _, err := NewDealer(4, 0, nil); err != ErrInvalidFaces {
		t.Errorf("faces 0: got %v, want ErrInvalidFaces", err)
	}
}

func TestDealRange(t *testing.T) {
	tests := []struct {
		count int
		faces uint32
	}{
		{DefaultCount, DefaultFaces},
		{1, 1},
		{6, 20},
	}

	for _, tt := range tests {
		d, err := NewDealer(tt.count, tt.faces, nil)
		if err != nil {
			t.Fatalf("NewDealer(%d, %d): %v", tt.count, tt.faces, err)
		}
		for i := 0; i < 200; i++ {
			hand := d.Deal()
			if len(hand) != tt.count {
				t.Fatalf("len(hand) = %d, want %d", len(hand), tt.count)
			}
			for _, v := range hand {
				if v < 1 || v > tt.faces {
					t.Fatalf("value %d outside [1, %d]", v, tt.faces)
				}
			}
		}
	}
}

func TestSeededDealersRepeat(t *testing.T) {
	seed := uint64(42)
	a, _ := NewDealer(4, 6, &seed)
	b, _ := NewDealer(4, 6, &seed)

	for round := 0; round < 10; round++ {
		ha, hb := a.Deal(), b.Deal()
		for i := range ha {
			if ha[i] != hb[i] {
				t.Fatalf("round %d: %v != %v", round, ha, hb)
			}
		}
	}
}

func TestDealConcurrent(t *testing.T) {
	d, _ := NewDealer(4, 6, nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if len(d.Deal()) != 4 {
					t.Error("short hand")
				}
			}
		}()
	}
	wg.Wait()
}
