package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/inputkit/pkg/validator"
)

func TestValidatePassword(t *testing.T) {
	ctx := context.Background()
	v := validator.New()

	checkPassword := func(raw string, opts validator.Options) error {
		_, err := v.Validate(ctx, validator.KindPassword, validator.Input{
			Field: "password", Value: raw, Raw: raw, Opts: opts,
		})
		return err
	}

	t.Run("strong password passes", func(t *testing.T) {
		assert.NoError(t, checkPassword("secret42!", validator.Options{}))
	})

	t.Run("default minimum length is eight", func(t *testing.T) {
		err := checkPassword("ab1!", validator.Options{})
		assert.EqualError(t, err, "password should not be less than 8 characters")
	})

	t.Run("declared minimum overrides the default", func(t *testing.T) {
		assert.NoError(t, checkPassword("ab1!", validator.Options{Min: 4}))
	})

	t.Run("needs at least two letters", func(t *testing.T) {
		err := checkPassword("12345678!", validator.Options{})
		assert.EqualError(t, err, "password must contain at least two letters")
	})

	t.Run("needs at least two non-letter characters", func(t *testing.T) {
		err := checkPassword("onlyletters", validator.Options{})
		assert.EqualError(t, err, "password must contain at least two non-letter characters")
	})

	t.Run("matchWith equality", func(t *testing.T) {
		assert.NoError(t, checkPassword("secret42!", validator.Options{MatchWith: "secret42!"}))

		err := checkPassword("secret42!", validator.Options{MatchWith: "different1!"})
		assert.EqualError(t, err, "passwords do not match")
	})

	t.Run("matchWith custom message", func(t *testing.T) {
		err := checkPassword("secret42!", validator.Options{
			MatchWith:    "different1!",
			MatchWithErr: "confirmation does not match",
		})
		assert.EqualError(t, err, "confirmation does not match")
	})

	t.Run("error messages never echo the password", func(t *testing.T) {
		err := checkPassword("short1!", validator.Options{})
		assert.NotContains(t, err.Error(), "short1!")
	})
}
