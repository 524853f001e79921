package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/inputkit/pkg/validator"
)

func TestValidateChoice(t *testing.T) {
	ctx := context.Background()
	v := validator.New()

	t.Run("member of the set passes", func(t *testing.T) {
		_, err := v.Validate(ctx, validator.KindChoice, validator.Input{
			Field: "color", Value: "red", Raw: "red",
			Opts: validator.Options{Choices: []any{"red", "green", "blue"}},
		})
		assert.NoError(t, err)
	})

	t.Run("comparison is loose across types", func(t *testing.T) {
		_, err := v.Validate(ctx, validator.KindChoice, validator.Input{
			Field: "size", Value: int64(5), Raw: "5",
			Opts: validator.Options{Choices: []any{1, 3, 5}},
		})
		assert.NoError(t, err)
	})

	t.Run("non-member fails with default message", func(t *testing.T) {
		_, err := v.Validate(ctx, validator.KindChoice, validator.Input{
			Field: "color", Value: "mauve", Raw: "mauve",
			Opts: validator.Options{Choices: []any{"red", "green"}},
		})
		assert.EqualError(t, err, `"mauve" is not a valid choice`)
	})

	t.Run("custom message wins", func(t *testing.T) {
		_, err := v.Validate(ctx, validator.KindChoice, validator.Input{
			Field: "color", Value: "mauve", Raw: "mauve",
			Opts: validator.Options{Choices: []any{"red"}, Err: "that color is not offered"},
		})
		assert.EqualError(t, err, "that color is not offered")
	})

	t.Run("empty choice set rejects everything", func(t *testing.T) {
		_, err := v.Validate(ctx, validator.KindChoice, validator.Input{
			Field: "color", Value: "red", Raw: "red",
		})
		assert.EqualError(t, err, `"red" is not a valid choice`)
	})
}

func TestValidateRange(t *testing.T) {
	ctx := context.Background()
	v := validator.New()

	rangeInput := func(raw string, value any, opts validator.Options) error {
		_, err := v.Validate(ctx, validator.KindRange, validator.Input{
			Field: "level", Value: value, Raw: raw, Opts: opts,
		})
		return err
	}

	t.Run("numeric value inside the range", func(t *testing.T) {
		assert.NoError(t, rangeInput("5", int64(5), validator.Options{From: 1, To: 10}))
	})

	t.Run("numeric value outside the range", func(t *testing.T) {
		err := rangeInput("11", int64(11), validator.Options{From: 1, To: 10})
		assert.EqualError(t, err, `"11" is not a valid choice`)
	})

	t.Run("step must be reachable from the lower bound", func(t *testing.T) {
		assert.NoError(t, rangeInput("6", int64(6), validator.Options{From: 0, To: 10, Step: 2}))

		err := rangeInput("5", int64(5), validator.Options{From: 0, To: 10, Step: 2})
		assert.EqualError(t, err, `"5" is not a valid choice`)
	})

	t.Run("fractional steps work", func(t *testing.T) {
		assert.NoError(t, rangeInput("1.5", 1.5, validator.Options{From: 0, To: 2, Step: 0.5}))
	})

	t.Run("alphabetic endpoints accept single characters", func(t *testing.T) {
		assert.NoError(t, rangeInput("c", "c", validator.Options{From: "a", To: "f"}))

		err := rangeInput("z", "z", validator.Options{From: "a", To: "f"})
		assert.EqualError(t, err, `"z" is not a valid choice`)
	})

	t.Run("alphabetic range with step", func(t *testing.T) {
		assert.NoError(t, rangeInput("e", "e", validator.Options{From: "a", To: "z", Step: 2}))

		err := rangeInput("d", "d", validator.Options{From: "a", To: "z", Step: 2})
		assert.EqualError(t, err, `"d" is not a valid choice`)
	})

	t.Run("half-declared range is a no-op", func(t *testing.T) {
		assert.NoError(t, rangeInput("anything", "anything", validator.Options{From: 1}))
		assert.NoError(t, rangeInput("anything", "anything", validator.Options{}))
	})

	t.Run("custom message wins", func(t *testing.T) {
		err := rangeInput("11", int64(11), validator.Options{From: 1, To: 10, Err: "level out of range"})
		assert.EqualError(t, err, "level out of range")
	})
}
