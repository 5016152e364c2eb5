package request

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSaveRequest() SaveEspositoreRequest {
	return SaveEspositoreRequest{
		Name:        "Studio Luce",
		Description: strings.Repeat("d", 100),
		LogoURL:     "https://example.com/logo.png",
	}
}

func TestSaveEspositoreRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *SaveEspositoreRequest)
		wantErr error
	}{
		{
			name:   "minimal valid payload",
			mutate: func(_ *SaveEspositoreRequest) {},
		},
		{
			name: "missing name",
			mutate: func(req *SaveEspositoreRequest) {
				req.Name = ""
			},
			wantErr: errMissingRequired,
		},
		{
			name: "whitespace-only name counts as missing",
			mutate: func(req *SaveEspositoreRequest) {
				req.Name = "   "
			},
			wantErr: errMissingRequired,
		},
		{
			name: "missing description",
			mutate: func(req *SaveEspositoreRequest) {
				req.Description = ""
			},
			wantErr: errMissingRequired,
		},
		{
			name: "missing logo URL",
			mutate: func(req *SaveEspositoreRequest) {
				req.LogoURL = ""
			},
			wantErr: errMissingRequired,
		},
		{
			name: "description of 99 characters is too short",
			mutate: func(req *SaveEspositoreRequest) {
				req.Description = strings.Repeat("d", 99)
			},
			wantErr: errDescriptionTooShort,
		},
		{
			name: "description of exactly 100 characters passes",
			mutate: func(req *SaveEspositoreRequest) {
				req.Description = strings.Repeat("d", 100)
			},
		},
		{
			name: "length is counted in runes, not bytes",
			mutate: func(req *SaveEspositoreRequest) {
				req.Description = strings.Repeat("à", 100)
			},
		},
		{
			name: "trailing whitespace does not pad the description",
			mutate: func(req *SaveEspositoreRequest) {
				req.Description = strings.Repeat("d", 99) + "   "
			},
			wantErr: errDescriptionTooShort,
		},
		{
			name: "plausible email passes",
			mutate: func(req *SaveEspositoreRequest) {
				req.Email = "a@b.c"
			},
		},
		{
			name: "email without a dot in the domain fails",
			mutate: func(req *SaveEspositoreRequest) {
				req.Email = "a@b"
			},
			wantErr: errInvalidEmail,
		},
		{
			name: "email without an at sign fails",
			mutate: func(req *SaveEspositoreRequest) {
				req.Email = "a.com"
			},
			wantErr: errInvalidEmail,
		},
		{
			name: "empty email is optional",
			mutate: func(req *SaveEspositoreRequest) {
				req.Email = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSaveRequest()
			tt.mutate(&req)

			err := req.Validate()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveEspositoreRequestTrimming(t *testing.T) {
	req := validSaveRequest()
	req.Name = "  Studio Luce  "
	req.Website = " https://example.com "
	req.Images = []string{" a.jpg ", "   ", "b.jpg"}

	require.NoError(t, req.Validate())

	assert.Equal(t, "Studio Luce", req.Name)
	assert.Equal(t, "https://example.com", req.Website)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, req.Images)
}

func TestSaveEspositoreRequestToDomain(t *testing.T) {
	req := validSaveRequest()
	req.Website = ""
	req.Images = nil
	req.Fiere = []string{}
	req.Categories = []string{"c-1"}

	require.NoError(t, req.Validate())
	e := req.ToDomain()

	assert.Empty(t, e.Website)
	assert.Nil(t, e.Images, "empty list should be absent, not empty")
	assert.Nil(t, e.Fiere)
	assert.Equal(t, []string{"c-1"}, e.Categories)
}

func TestSaveEspositoreRequestIsLegacy(t *testing.T) {
	req := validSaveRequest()
	assert.False(t, req.IsLegacy())

	req.Category = "Fotografia"
	assert.True(t, req.IsLegacy())

	req.Categories = []string{"c-1"}
	assert.False(t, req.IsLegacy(), "an id list wins over the legacy field")
}

func TestAddImageRequestValidate(t *testing.T) {
	req := AddImageRequest{URL: "https://example.com/a.jpg"}
	assert.NoError(t, req.Validate())

	req = AddImageRequest{}
	assert.Error(t, req.Validate())
}
