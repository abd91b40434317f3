package grid

import "testing"

func TestCellAdvance(t *testing.T) {
	c := Decaying(1)
	for stage := 2; stage <= DecayStages; stage++ {
		c = c.Advance()
		if !c.IsDecaying() || c.Stage() != stage {
			t.Fatalf("expected decaying(%d), got %v", stage, c)
		}
	}
	c = c.Advance()
	if !c.IsEmpty() {
		t.Fatalf("expected empty after last stage, got %v", c)
	}
	if got := c.Advance(); got != Empty {
		t.Errorf("empty should be absorbing, got %v", got)
	}
	if got := Active.Advance(); got != Active {
		t.Errorf("active should not advance, got %v", got)
	}
}

func TestDecayingPanicsOutOfRange(t *testing.T) {
	for _, stage := range []int{0, -1, DecayStages + 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for stage %d", stage)
				}
			}()
			Decaying(stage)
		}()
	}
}

func TestCellSymbol(t *testing.T) {
	tests := []struct {
		cell Cell
		want byte
	}{
		{Active, '@'},
		{Empty, '.'},
		{Decaying(1), '1'},
		{Decaying(8), '8'},
	}
	for _, tt := range tests {
		if got := tt.cell.Symbol(); got != tt.want {
			t.Errorf("%v: expected %q, got %q", tt.cell, tt.want, got)
		}
	}
}

func TestZeroCellIsEmpty(t *testing.T) {
	var c Cell
	if !c.IsEmpty() || c.Stage() != 0 {
		t.Errorf("zero cell should be empty, got %v", c)
	}
}
