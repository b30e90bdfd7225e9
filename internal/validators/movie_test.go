package validators

import (
	"strings"
	"testing"

	"github.com/kinoteka/kinoteka/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidateNewMovie_Valid(t *testing.T) {
	v := NewMovieValidator()

	err := v.ValidateNewMovie(models.CreateMovieInput{
		Name:         "Stalker",
		Description:  "A guide leads two men through the Zone.",
		DirectorName: "Andrei Tarkovsky",
		ReleaseDate:  "1979-05-25",
	})

	assert.NoError(t, err)
}

func TestValidateNewMovie_Violations(t *testing.T) {
	v := NewMovieValidator()

	tests := []struct {
		name  string
		input models.CreateMovieInput
		want  []error
	}{
		{
			name:  "empty name",
			input: models.CreateMovieInput{Name: ""},
			want:  []error{ErrMovieNameLength},
		},
		{
			name:  "name too long",
			input: models.CreateMovieInput{Name: strings.Repeat("a", 101)},
			want:  []error{ErrMovieNameLength},
		},
		{
			name:  "description too long",
			input: models.CreateMovieInput{Name: "ok", Description: strings.Repeat("d", 501)},
			want:  []error{ErrDescriptionTooLong},
		},
		{
			name:  "director name too long",
			input: models.CreateMovieInput{Name: "ok", DirectorName: strings.Repeat("d", 101)},
			want:  []error{ErrDirectorNameTooLong},
		},
		{
			name: "multiple violations joined",
			input: models.CreateMovieInput{
				Name:         strings.Repeat("n", 101),
				Description:  strings.Repeat("d", 501),
				DirectorName: strings.Repeat("x", 101),
			},
			want: []error{ErrMovieNameLength, ErrDescriptionTooLong, ErrDirectorNameTooLong},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateNewMovie(tt.input)
			require.Error(t, err)
			for _, wantErr := range tt.want {
				assert.ErrorIs(t, err, wantErr)
			}
		})
	}
}

func TestValidateMovieUpdate(t *testing.T) {
	v := NewMovieValidator()

	t.Run("all fields absent is valid", func(t *testing.T) {
		err := v.ValidateMovieUpdate(models.UpdateMovieInput{MovieID: 1})
		assert.NoError(t, err)
	})

	t.Run("present fields are checked", func(t *testing.T) {
		err := v.ValidateMovieUpdate(models.UpdateMovieInput{
			MovieID: 1,
			Name:    strPtr(strings.Repeat("n", 101)),
		})
		assert.ErrorIs(t, err, ErrMovieNameLength)
	})

	t.Run("empty name counts as absent", func(t *testing.T) {
		err := v.ValidateMovieUpdate(models.UpdateMovieInput{
			MovieID: 1,
			Name:    strPtr(""),
		})
		assert.NoError(t, err)
	})

	t.Run("valid partial update", func(t *testing.T) {
		err := v.ValidateMovieUpdate(models.UpdateMovieInput{
			MovieID:     1,
			Description: strPtr("updated synopsis"),
		})
		assert.NoError(t, err)
	})
}
