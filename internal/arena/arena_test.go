// SPDX-License-Identifier: Unlicense OR MIT

package arena

import "testing"

func TestInsertGet(t *testing.T) {
	var a Arena[string]
	i := a.Insert("a")
	j := a.Insert("b")
	if i == j {
		t.Fatalf("Insert returned duplicate index %v", i)
	}
	if got := a.Get(i); got == nil || *got != "a" {
		t.Errorf("Get(%v) = %v, want a", i, got)
	}
	if a.Len() != 2 {
		t.Errorf("Len = %d, want 2", a.Len())
	}
	if (Index{}).Valid() {
		t.Error("zero Index is valid")
	}
	if a.Get(Index{}) != nil {
		t.Error("zero Index resolved to a value")
	}
}

func TestStaleIndex(t *testing.T) {
	var a Arena[int]
	i := a.Insert(1)
	if v, ok := a.Remove(i); !ok || v != 1 {
		t.Fatalf("Remove = %d, %v", v, ok)
	}
	j := a.Insert(2)
	if j.Slot() != i.Slot() {
		t.Fatalf("freed slot not reused: %v then %v", i, j)
	}
	if a.Contains(i) {
		t.Error("stale index still resolves")
	}
	if got := a.Get(j); got == nil || *got != 2 {
		t.Errorf("Get(%v) = %v, want 2", j, got)
	}
	if _, ok := a.Remove(i); ok {
		t.Error("removing a stale index succeeded")
	}
	if a.Len() != 1 {
		t.Errorf("Len = %d, want 1", a.Len())
	}
}

func TestRange(t *testing.T) {
	var a Arena[int]
	var ids []Index
	for i := 0; i < 4; i++ {
		ids = append(ids, a.Insert(i))
	}
	a.Remove(ids[1])
	sum := 0
	a.Range(func(_ Index, v *int) bool {
		sum += *v
		return true
	})
	if sum != 0+2+3 {
		t.Errorf("sum = %d, want 5", sum)
	}
}
