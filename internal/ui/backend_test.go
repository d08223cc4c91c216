package ui

import (
	"os"
	"testing"
)

func TestNormalizeBackend(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", BackendAuto},
		{"auto", BackendAuto},
		{"  AUTO ", BackendAuto},
		{"bubbletea", BackendBubbleTea},
		{"Huh", BackendHuh},
		{"tview", BackendTView},
		{"plain", BackendPlain},
		{"ncurses", BackendAuto},
	}
	for _, tc := range cases {
		if got := NormalizeBackend(tc.raw); got != tc.want {
			t.Fatalf("NormalizeBackend(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestBackendCandidatesPreferRequestedBackend(t *testing.T) {
	cases := []struct {
		backend string
		want    []string
	}{
		{"auto", []string{BackendBubbleTea, BackendHuh, BackendTView}},
		{"bubbletea", []string{BackendBubbleTea, BackendHuh, BackendTView}},
		{"huh", []string{BackendHuh, BackendBubbleTea, BackendTView}},
		{"tview", []string{BackendTView, BackendBubbleTea, BackendHuh}},
	}
	for _, tc := range cases {
		got := backendCandidates(tc.backend)
		if len(got) != len(tc.want) {
			t.Fatalf("backendCandidates(%q) has %d entries, want %d", tc.backend, len(got), len(tc.want))
		}
		for idx := range tc.want {
			if got[idx] != tc.want[idx] {
				t.Fatalf("backendCandidates(%q)[%d] = %q, want %q", tc.backend, idx, got[idx], tc.want[idx])
			}
		}
	}
}

func TestBackendCandidatesPlainHasNoFallbacks(t *testing.T) {
	got := backendCandidates("plain")
	if len(got) != 1 || got[0] != BackendPlain {
		t.Fatalf("backendCandidates(plain) = %v, want [plain]", got)
	}
}

func TestDetectBackendDowngradesWhenOutputIsPiped(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	for _, backend := range []string{"auto", "bubbletea", "huh", "tview"} {
		if got := detectBackendFor(backend, w.Fd()); got != BackendPlain {
			t.Fatalf("detectBackendFor(%q, pipe) = %q, want plain", backend, got)
		}
	}
}

func TestDetectBackendKeepsExplicitPlain(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	if got := detectBackendFor("plain", w.Fd()); got != BackendPlain {
		t.Fatalf("detectBackendFor(plain) = %q", got)
	}
}

func TestIsInteractiveBackend(t *testing.T) {
	if IsInteractiveBackend("plain") {
		t.Fatalf("plain reported as interactive")
	}
	for _, backend := range []string{"auto", "bubbletea", "huh", "tview", ""} {
		if !IsInteractiveBackend(backend) {
			t.Fatalf("%q reported as non-interactive", backend)
		}
	}
}
