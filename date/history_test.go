package date

import "testing"

func TestHistoryAppendKeepsOrder(t *testing.T) {
	var h History[float64]
	h.Append(MustParse("2024-11-18"), 2)
	h.Append(MustParse("2024-11-15"), 1)
	h.Append(MustParse("2024-11-20"), 3)

	var prev Date
	for day := range h.Values() {
		if !prev.IsZero() && !prev.Before(day) {
			t.Fatalf("history is not chronological: %v before %v", prev, day)
		}
		prev = day
	}

	// overwriting an existing date keeps a single entry
	h.Append(MustParse("2024-11-15"), 10)
	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3", h.Len())
	}
	if v, ok := h.On(MustParse("2024-11-15")); !ok || v != 10 {
		t.Errorf("On() = %v, %v, want 10, true", v, ok)
	}
}

func TestHistoryLookups(t *testing.T) {
	var h History[float64]
	h.Append(MustParse("2024-11-15"), 15.0)
	h.Append(MustParse("2024-11-18"), 15.2)
	h.Append(MustParse("2025-02-12"), 16.5)

	t.Run("On", func(t *testing.T) {
		if _, ok := h.On(MustParse("2024-11-16")); ok {
			t.Errorf("On() found a value on an absent date")
		}
	})

	t.Run("AsOf exact", func(t *testing.T) {
		day, v, ok := h.AsOf(MustParse("2024-11-18"))
		if !ok || v != 15.2 || day != MustParse("2024-11-18") {
			t.Errorf("AsOf() = %v, %v, %v", day, v, ok)
		}
	})
	t.Run("AsOf falls back to latest before", func(t *testing.T) {
		day, v, ok := h.AsOf(MustParse("2025-02-13"))
		if !ok || v != 16.5 || day != MustParse("2025-02-12") {
			t.Errorf("AsOf() = %v, %v, %v", day, v, ok)
		}
	})
	t.Run("AsOf before first", func(t *testing.T) {
		if _, _, ok := h.AsOf(MustParse("2024-11-14")); ok {
			t.Errorf("AsOf() found a value before the first date")
		}
	})

	t.Run("OnOrAfter exact", func(t *testing.T) {
		day, v, ok := h.OnOrAfter(MustParse("2024-11-15"))
		if !ok || v != 15.0 || day != MustParse("2024-11-15") {
			t.Errorf("OnOrAfter() = %v, %v, %v", day, v, ok)
		}
	})
	t.Run("OnOrAfter falls forward to earliest after", func(t *testing.T) {
		day, v, ok := h.OnOrAfter(MustParse("2024-11-16"))
		if !ok || v != 15.2 || day != MustParse("2024-11-18") {
			t.Errorf("OnOrAfter() = %v, %v, %v", day, v, ok)
		}
	})
	t.Run("OnOrAfter past the end", func(t *testing.T) {
		if _, _, ok := h.OnOrAfter(MustParse("2025-02-13")); ok {
			t.Errorf("OnOrAfter() found a value after the last date")
		}
	})

	t.Run("Latest", func(t *testing.T) {
		day, v := h.Latest()
		if day != MustParse("2025-02-12") || v != 16.5 {
			t.Errorf("Latest() = %v, %v", day, v)
		}
	})
	t.Run("Latest empty", func(t *testing.T) {
		var empty History[float64]
		if day, v := empty.Latest(); !day.IsZero() || v != 0 {
			t.Errorf("Latest() on empty = %v, %v", day, v)
		}
	})
}
