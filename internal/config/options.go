package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidOptions is wrapped by every Options validation failure.
var ErrInvalidOptions = errors.New("invalid options")

// Options are the settings of one import run.
type Options struct {
	Profile      string `validate:"required"`
	Group        string // mapping column; defaults to Profile
	InputFile    string `validate:"required"`
	MappingFile  string `validate:"required"`
	ProfilesFile string `validate:"required"`
	ReportPath   string

	Start int  `validate:"min=1"`
	End   *int `validate:"omitempty,min=1"`
	Count *int `validate:"omitempty,min=1"`

	Verbose             bool
	IncludeUnsubscribed bool
	Force               bool
	DryRun              bool
	NormalizeStates     bool
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the options and reports every problem at once.
func (o *Options) Validate() error {
	var msgs []string

	if err := validate.Struct(o); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
		}
		for _, fe := range verrs {
			msgs = append(msgs, fieldMessage(fe))
		}
	}

	if o.End != nil && o.Count != nil {
		msgs = append(msgs, "--end and --count are mutually exclusive")
	}
	if o.End != nil && *o.End < o.Start {
		msgs = append(msgs, fmt.Sprintf("--end (%d) must not be before --start (%d)", *o.End, o.Start))
	}

	if len(msgs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidOptions, strings.Join(msgs, "; "))
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

// Chapter returns the mapping column for the run: the group if given,
// otherwise the profile name.
func (o *Options) Chapter() string {
	if o.Group != "" {
		return o.Group
	}
	return o.Profile
}

// EndIndex returns the last row to process. ok is false when the run is
// unbounded.
func (o *Options) EndIndex() (end int, ok bool) {
	switch {
	case o.End != nil:
		return *o.End, true
	case o.Count != nil:
		return o.Start + *o.Count - 1, true
	default:
		return 0, false
	}
}

// InWindow reports whether data row n is selected.
func (o *Options) InWindow(n int) bool {
	if n < o.Start {
		return false
	}
	end, ok := o.EndIndex()
	return !ok || n <= end
}

// PastWindow reports whether data row n and every later row are outside
// the window.
func (o *Options) PastWindow(n int) bool {
	end, ok := o.EndIndex()
	return ok && n > end
}
