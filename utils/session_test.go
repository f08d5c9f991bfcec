package utils

import "testing"

const firefoxLinuxUA = "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0"
const iphoneUA = "Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Mobile/15E148 Safari/604.1"

func TestParseUserAgent(t *testing.T) {
	t.Run("Desktop", func(t *testing.T) {
		browser, os, device := ParseUserAgent(firefoxLinuxUA)
		if browser != "Firefox" {
			t.Errorf("expected Firefox, got %q", browser)
		}
		if os != "Linux" {
			t.Errorf("expected Linux, got %q", os)
		}
		if device != "Desktop" {
			t.Errorf("expected Desktop, got %q", device)
		}
	})

	t.Run("Mobile", func(t *testing.T) {
		_, _, device := ParseUserAgent(iphoneUA)
		if device != "Mobile" {
			t.Errorf("expected Mobile, got %q", device)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		browser, os, device := ParseUserAgent("")
		if browser != "Unknown Browser" || os != "Unknown OS" || device != "Desktop" {
			t.Errorf("unexpected fallback: %q / %q / %q", browser, os, device)
		}
	})
}

func TestGenerateSessionName(t *testing.T) {
	if got := GenerateSessionName(firefoxLinuxUA); got != "Firefox on Linux" {
		t.Errorf("expected %q, got %q", "Firefox on Linux", got)
	}
	if got := GenerateSessionName(""); got != "Unknown Browser on Unknown OS" {
		t.Errorf("unexpected fallback name %q", got)
	}
}
