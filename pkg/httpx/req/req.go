package req

import (
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"raincast/pkg/errcodes"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

// Read decodes the JSON body into dest and validates it against its
// `validate` tags. Both failures are InvalidArgument errors; the code and
// description of validation failures can be overridden with options.
func Read(r *http.Request, dest any, opts ...Option) error {
	o := options{
		validationCode:        errcodes.ValidationError,
		validationDescription: "",
	}

	for _, opt := range opts {
		opt(&o)
	}

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("json.Decode: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid JSON"),
		)
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		description := o.validationDescription
		if description == "" {
			description = err.Error()
		}

		return failure.NewInvalidArgumentError(
			fmt.Errorf("validation error: %w", err).Error(),
			failure.WithCode(o.validationCode),
			failure.WithDescription(description),
		)
	}

	return nil
}
