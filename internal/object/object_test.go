package object

import (
	"testing"
	"time"
)

func TestIndexAtAndRemoveAt(t *testing.T) {
	chickens := []Chicken{NewChicken(0, 1), NewChicken(2, 3), NewChicken(4, 1)}

	if i := IndexAt(chickens, 2, 3); i != 1 {
		t.Fatalf("IndexAt(2, 3) = %d, want 1", i)
	}
	if i := IndexAt(chickens, 1, 1); i != -1 {
		t.Fatalf("IndexAt(1, 1) = %d, want -1", i)
	}

	chickens = RemoveAt(chickens, 1)
	if len(chickens) != 2 || chickens[0] != NewChicken(0, 1) || chickens[1] != NewChicken(4, 1) {
		t.Fatalf("RemoveAt() = %v, want order kept", chickens)
	}
}

func TestBulletSpent(t *testing.T) {
	b := NewBullet(3, 2, 1)
	if b.Spent() {
		t.Fatal("power 1 bullet reported spent")
	}
	b.Power--
	if !b.Spent() {
		t.Fatal("power 0 bullet not spent")
	}
	if up := b.Up(); up.Row != 2 || up.Col != 2 {
		t.Fatalf("Up() = %+v, want {2 2}", up)
	}
}

func TestShouldRenderBlink(t *testing.T) {
	if !ShouldRenderBlink(0, 10) {
		t.Fatal("no effect must always render")
	}
	// 10 Hz: 150ms -> phase 1 (visible), 250ms -> phase 2 (hidden).
	if !ShouldRenderBlink(150*time.Millisecond, 10) {
		t.Fatal("phase 1 hidden")
	}
	if ShouldRenderBlink(250*time.Millisecond, 10) {
		t.Fatal("phase 2 visible")
	}
}
