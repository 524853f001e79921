package validator

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/inputkit/pkg/upload"
)

// fileValidator builds the validation function for a file kind. families
// pre-seeds the extension allow-list for the subtypes (image, audio, video,
// media, document, archive); the generic file kind passes nil and accepts
// any extension unless the rule declares an explicit mimes list.
func (v *Validator) fileValidator(families []string) validateFn {
	allowed := upload.FamilyExtensions(families...)
	return func(ctx context.Context, in *Input) (any, error) {
		f, ok := in.Value.(*upload.File)
		if !ok {
			return in.Value, fmt.Errorf("%s is not an uploaded file", in.Field)
		}

		if err := f.CodeError(); err != nil {
			return in.Value, err
		}

		if err := v.checkLimits(in.Field, float64(f.Size), " bytes", in.Opts); err != nil {
			return in.Value, err
		}

		ext, err := upload.CheckType(f, allowed, in.Opts.Mimes, in.Opts.MimesErr)
		if err != nil {
			return in.Value, err
		}

		if in.Opts.MoveTo != "" {
			// The stored content-hash name becomes the field's data value.
			name, err := upload.Move(ctx, v.storage, f, in.Opts.MoveTo, ext)
			if err != nil {
				return in.Value, err
			}
			return name, nil
		}

		return f.Name, nil
	}
}
