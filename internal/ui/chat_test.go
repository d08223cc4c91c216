package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestIsChatExit(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"exit", true},
		{"  QUIT ", true},
		{"bye", true},
		{"अलविदा", true},
		{"exit now", false},
		{"goodbye", false},
		{"", false},
		{"buy zinc", false},
		{"quitlozenges", false},
	}
	for _, tc := range cases {
		if got := isChatExit(tc.input); got != tc.want {
			t.Fatalf("isChatExit(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestChatPlainAsksAndStopsOnExitWord(t *testing.T) {
	var asked []string
	session := ChatSession{
		Greeting: "Welcome to the shop.",
		Ask: func(query string) (string, string) {
			asked = append(asked, query)
			return "We stock that.", "local"
		},
	}

	in := strings.NewReader("do you have zinc?\n\nexit\n")
	var out bytes.Buffer
	if err := chatPlain(session, in, &out); err != nil {
		t.Fatalf("chatPlain error = %v", err)
	}

	if len(asked) != 1 || asked[0] != "do you have zinc?" {
		t.Fatalf("asked = %v", asked)
	}
	got := out.String()
	if !strings.Contains(got, "Welcome to the shop.") {
		t.Fatalf("greeting missing from output:\n%s", got)
	}
	if !strings.Contains(got, "[local]\nWe stock that.") {
		t.Fatalf("answer missing from output:\n%s", got)
	}
}

func TestChatPlainEndsCleanlyOnEOF(t *testing.T) {
	session := ChatSession{Ask: func(query string) (string, string) {
		t.Fatalf("Ask called without input")
		return "", ""
	}}
	var out bytes.Buffer
	if err := chatPlain(session, strings.NewReader(""), &out); err != nil {
		t.Fatalf("chatPlain on EOF error = %v", err)
	}
}
