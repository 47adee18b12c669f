package inputval

import (
	"testing"
	"time"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		// Valid emails
		{"user@example.com", true},
		{"user.name@example.com", true},
		{"user+tag@example.com", true},
		{"user@subdomain.example.com", true},
		{"user123@example.co.uk", true},
		{"a@b.co", true},

		// Valid with whitespace (trimmed)
		{"  user@example.com  ", true},

		// Invalid emails - empty/whitespace
		{"", false},
		{"   ", false},

		// Invalid emails - missing parts
		{"user", false},
		{"user@", false},
		{"@example.com", false},

		// Invalid emails - single-label domain; the API requires a TLD
		{"user@localhost", false},
		{"admin@mailserver", false},

		// Invalid emails - display name format
		{"User Name <user@example.com>", false},

		// Invalid emails - embedded spaces
		{"user @example.com", false},
		{"user@ example.com", false},
		{"user@exam ple.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			got := IsValidEmail(tt.email)
			if got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestIsValidHTTPURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		// Valid URLs
		{"http://example.com", true},
		{"https://example.com", true},
		{"http://example.com/path", true},
		{"https://example.com/path?query=1", true},
		{"http://localhost:8080", true},
		{"https://sub.domain.example.com", true},

		// Valid with whitespace (trimmed)
		{"  https://example.com  ", true},

		// Invalid URLs
		{"", false},
		{"   ", false},
		{"ftp://example.com", false},
		{"mailto:user@example.com", false},
		{"example.com", false},
		{"//example.com", false},
		{"not a url", false},
		{"file:///path/to/file", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got := IsValidHTTPURL(tt.url)
			if got != tt.want {
				t.Errorf("IsValidHTTPURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		// Valid phone numbers
		{"5550100", true},
		{"555-0100", true},
		{"(555) 010-0123", true},
		{"+1 555 010 0123", true},

		// Valid with whitespace (trimmed)
		{"  555-0100  ", true},

		// Invalid phone numbers
		{"", false},
		{"call me", false},
		{"555-0100 ext. 4", false},
		{"five five five", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			got := IsValidPhone(tt.phone)
			if got != tt.want {
				t.Errorf("IsValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
			}
		})
	}
}

func TestIsValidObjectID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		// Valid ObjectIDs (24 hex characters)
		{"507f1f77bcf86cd799439011", true},
		{"000000000000000000000000", true},
		{"ffffffffffffffffffffffff", true},
		{"FFFFFFFFFFFFFFFFFFFFFFFF", true}, // uppercase hex is valid

		// Valid with whitespace (trimmed)
		{"  507f1f77bcf86cd799439011  ", true},

		// Invalid ObjectIDs
		{"", false},
		{"   ", false},
		{"507f1f77bcf86cd79943901", false},   // too short (23 chars)
		{"507f1f77bcf86cd7994390111", false}, // too long (25 chars)
		{"507f1f77bcf86cd79943901g", false},  // invalid hex char
		{"not-a-valid-id", false},
		{"12345", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := IsValidObjectID(tt.id)
			if got != tt.want {
				t.Errorf("IsValidObjectID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestObjectID(t *testing.T) {
	t.Run("parses valid hex", func(t *testing.T) {
		oid, ok := ObjectID("507f1f77bcf86cd799439011")
		if !ok {
			t.Fatal("ObjectID(valid) = false")
		}
		if oid.Hex() != "507f1f77bcf86cd799439011" {
			t.Errorf("Hex() = %q", oid.Hex())
		}
	})

	t.Run("uppercase parses to same id", func(t *testing.T) {
		oid, ok := ObjectID("507F1F77BCF86CD799439011")
		if !ok {
			t.Fatal("ObjectID(uppercase) = false")
		}
		if oid.Hex() != "507f1f77bcf86cd799439011" {
			t.Errorf("Hex() = %q", oid.Hex())
		}
	})

	t.Run("rejects malformed ids", func(t *testing.T) {
		for _, id := range []string{"", "12345", "not-a-valid-id", "507f1f77bcf86cd79943901g"} {
			if _, ok := ObjectID(id); ok {
				t.Errorf("ObjectID(%q) = true, want false", id)
			}
		}
	})
}

func TestIsValidMessageStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		// Valid statuses
		{"unread", true},
		{"read", true},
		{"responded", true},

		// Valid - case insensitive, trimmed
		{"UNREAD", true},
		{"Read", true},
		{"  responded  ", true},

		// Invalid statuses
		{"", false},
		{"   ", false},
		{"archived", false},
		{"deleted", false},
		{"new", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got := IsValidMessageStatus(tt.status)
			if got != tt.want {
				t.Errorf("IsValidMessageStatus(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Run("RFC 3339", func(t *testing.T) {
		got, ok := ParseDate("2024-03-15T10:30:00Z")
		if !ok {
			t.Fatal("ParseDate(RFC3339) = false")
		}
		want := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("ParseDate() = %v, want %v", got, want)
		}
	})

	t.Run("RFC 3339 with offset normalizes to UTC", func(t *testing.T) {
		got, ok := ParseDate("2024-03-15T10:30:00+02:00")
		if !ok {
			t.Fatal("ParseDate(offset) = false")
		}
		want := time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("ParseDate() = %v, want %v", got, want)
		}
		if got.Location() != time.UTC {
			t.Errorf("location = %v, want UTC", got.Location())
		}
	})

	t.Run("plain date", func(t *testing.T) {
		got, ok := ParseDate("2024-03-15")
		if !ok {
			t.Fatal("ParseDate(plain) = false")
		}
		want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("ParseDate() = %v, want %v", got, want)
		}
	})

	t.Run("trims whitespace", func(t *testing.T) {
		if _, ok := ParseDate("  2024-03-15  "); !ok {
			t.Error("ParseDate(padded) = false")
		}
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		for _, s := range []string{"", "yesterday", "15/03/2024", "2024-13-01", "2024-03-15 10:30"} {
			if _, ok := ParseDate(s); ok {
				t.Errorf("ParseDate(%q) = true, want false", s)
			}
		}
	})
}
