package paging

import "testing"

// TestKeyAtLeast verifies the inclusive lower bound.
func TestKeyAtLeast(t *testing.T) {
	f := KeyAtLeast(5)

	cases := []struct {
		key  int64
		want bool
	}{
		{4, false},
		{5, true},
		{6, true},
	}
	for _, c := range cases {
		if got := f(c.key); got != c.want {
			t.Errorf("KeyAtLeast(5)(%d) = %v, want %v", c.key, got, c.want)
		}
	}
}

// TestKeyAtMost verifies the inclusive upper bound.
func TestKeyAtMost(t *testing.T) {
	f := KeyAtMost(10)

	cases := []struct {
		key  int64
		want bool
	}{
		{9, true},
		{10, true},
		{11, false},
	}
	for _, c := range cases {
		if got := f(c.key); got != c.want {
			t.Errorf("KeyAtMost(10)(%d) = %v, want %v", c.key, got, c.want)
		}
	}
}

// TestAnd verifies composition reproduces "between" and tolerates nil
// members.
func TestAnd(t *testing.T) {
	between := And(KeyAtLeast(5), KeyAtMost(10), nil)

	cases := []struct {
		key  int64
		want bool
	}{
		{4, false},
		{5, true},
		{10, true},
		{11, false},
	}
	for _, c := range cases {
		if got := between(c.key); got != c.want {
			t.Errorf("And(>=5, <=10)(%d) = %v, want %v", c.key, got, c.want)
		}
	}

	if !And()(42) {
		t.Error("And() with no members should accept everything")
	}
}
