package security

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Hour)

	for i := 0; i < 3; i++ {
		if !rl.Allow("1.2.3.4") {
			t.Fatalf("request %d denied under the limit", i+1)
		}
	}
	if rl.Allow("1.2.3.4") {
		t.Error("request over the limit allowed")
	}
}

func TestRateLimiterIsPerClient(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)

	if !rl.Allow("1.1.1.1") {
		t.Fatal("first client denied")
	}
	if !rl.Allow("2.2.2.2") {
		t.Error("second client denied by first client's bucket")
	}
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	if !rl.Allow("1.2.3.4") {
		t.Fatal("first request denied")
	}
	if rl.Allow("1.2.3.4") {
		t.Fatal("second request allowed inside the window")
	}

	time.Sleep(20 * time.Millisecond)
	if !rl.Allow("1.2.3.4") {
		t.Error("request denied after the window reset")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name      string
		forwarded string
		realIP    string
		remote    string
		want      string
	}{
		{name: "forwarded header wins", forwarded: "10.0.0.1", realIP: "10.0.0.2", remote: "10.0.0.3:1234", want: "10.0.0.1"},
		{name: "real ip fallback", realIP: "10.0.0.2", remote: "10.0.0.3:1234", want: "10.0.0.2"},
		{name: "remote addr fallback", remote: "10.0.0.3:1234", want: "10.0.0.3:1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}
			r.RemoteAddr = tt.remote

			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
