package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCreateBookRequest() CreateBookRequest {
	return CreateBookRequest{
		Title:         "The Left Hand of Darkness",
		Author:        "Ursula K. Le Guin",
		ISBN:          "9780441478125",
		PublishedYear: 1969,
	}
}

func TestCreateBookRequest_Validate(t *testing.T) {
	assert.NoError(t, validCreateBookRequest().Validate())
}

func TestCreateBookRequest_Validate_ISBN(t *testing.T) {
	tests := []struct {
		name    string
		isbn    string
		wantErr bool
	}{
		{"isbn 13", "9780441478125", false},
		{"isbn 13 with 979 prefix", "9791234567896", false},
		{"isbn 10", "0441478123", false},
		{"isbn 10 with check X", "043942089X", false},
		{"isbn 10 with lowercase x", "043942089x", false},
		{"empty", "", true},
		{"too short", "12345", true},
		{"isbn 13 with bad prefix", "1234567890123", true},
		{"hyphenated", "978-0441478125", true},
		{"letters", "97804414781ab", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateBookRequest()
			req.ISBN = tt.isbn

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateBookRequest_Validate_Fields(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		req := validCreateBookRequest()
		req.Title = ""
		assert.Error(t, req.Validate())
	})

	t.Run("author too long", func(t *testing.T) {
		req := validCreateBookRequest()
		for len(req.Author) <= 100 {
			req.Author += "xxxxxxxxxx"
		}
		assert.Error(t, req.Validate())
	})

	t.Run("year out of range", func(t *testing.T) {
		req := validCreateBookRequest()
		req.PublishedYear = 10000
		assert.Error(t, req.Validate())
	})

	t.Run("missing year", func(t *testing.T) {
		req := validCreateBookRequest()
		req.PublishedYear = 0
		assert.Error(t, req.Validate())
	})
}
