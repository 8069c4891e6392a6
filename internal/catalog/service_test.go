// Copyright (c) 2026 Rodion Potapov
// Licensed under the MIT License. See LICENSE file in the project root for details.

package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoadAndSelect(t *testing.T) {
	ClearCache()
	t.Cleanup(ClearCache)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/examples" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"title": "Сократ", "text": "Все люди смертны. Сократ — человек.", "extra": 42},
			{"title": "Птицы", "text": "Все птицы летают. Пингвин — птица."}
		]`))
	}))
	defer srv.Close()

	if err := Load(context.Background(), srv.URL); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got := Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}

	tests := []struct {
		name     string
		idx      int
		wantText string
		wantOK   bool
	}{
		{name: "first example", idx: 0, wantText: "Все люди смертны. Сократ — человек.", wantOK: true},
		{name: "second example", idx: 1, wantText: "Все птицы летают. Пингвин — птица.", wantOK: true},
		{name: "negative index", idx: -1, wantOK: false},
		{name: "past the end", idx: 2, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ok := Select(tt.idx)
			if ok != tt.wantOK || text != tt.wantText {
				t.Errorf("Select(%d) = (%q, %v), want (%q, %v)", tt.idx, text, ok, tt.wantText, tt.wantOK)
			}
		})
	}
}

func TestSelectEmptyStore(t *testing.T) {
	ClearCache()
	t.Cleanup(ClearCache)

	if text, ok := Select(0); ok || text != "" {
		t.Errorf("Select(0) on empty store = (%q, %v), want (\"\", false)", text, ok)
	}
}

func TestLoadFailureLeavesStoreEmpty(t *testing.T) {
	ClearCache()
	t.Cleanup(ClearCache)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if err := Load(context.Background(), srv.URL); err == nil {
		t.Fatal("Load() expected error on 500, got nil")
	}
	if got := Len(); got != 0 {
		t.Errorf("Len() after failed load = %d, want 0", got)
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	ClearCache()
	t.Cleanup(ClearCache)

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"title": "t", "text": "x"}]`))
	}))
	defer srv.Close()

	for i := 0; i < 3; i++ {
		if err := Load(context.Background(), srv.URL); err != nil {
			t.Fatalf("Load() #%d error: %v", i+1, err)
		}
	}
	if calls != 1 {
		t.Errorf("server hit %d times, want 1", calls)
	}
}
