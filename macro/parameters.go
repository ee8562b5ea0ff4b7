package macro

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/influxdata/xdom/listener"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/serenize/snaker"
)

const (
	paramTag       = "param"
	descriptionTag = "description"
)

// ErrMandatoryParameter is the cause of a ParameterError for a missing mandatory parameter.
var ErrMandatoryParameter = errors.New("mandatory parameter is missing")

// ParameterDescriptor describes one field of a macro parameters struct.
//
// The parameter id is the name in the `param` struct tag, or the snake case field name.
// A `mandatory` tag option marks parameters that must be provided, e.g. `param:"name,mandatory"`.
type ParameterDescriptor struct {
	ID          string
	FieldName   string
	Description string
	Type        reflect.Type
	Mandatory   bool
	// Default is the value of the field in a new parameters struct, empty for zero values.
	Default string

	key string
}

// Validator is implemented by parameter structs checking their values once populated.
type Validator interface {
	Validate() error
}

// ParameterError reports invalid parameters of a macro invocation.
type ParameterError struct {
	Macro     string
	Parameter string
	Err       error
}

func (e *ParameterError) Error() string {
	if e.Parameter == "" {
		return fmt.Sprintf("invalid parameters for macro %q: %v", e.Macro, e.Err)
	}
	return fmt.Sprintf("invalid parameter %q for macro %q: %v", e.Parameter, e.Macro, e.Err)
}

func (e *ParameterError) Unwrap() error { return e.Err }
func (e *ParameterError) Cause() error  { return e.Err }

func describeParameters(params interface{}) []ParameterDescriptor {
	v := reflect.ValueOf(params)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	t := v.Type()
	var descs []ParameterDescriptor
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		tag := f.Tag.Get(paramTag)
		if tag == "-" {
			continue
		}
		name, opts := tag, ""
		if j := strings.IndexByte(tag, ','); j >= 0 {
			name, opts = tag[:j], tag[j+1:]
		}
		pd := ParameterDescriptor{
			ID:          name,
			FieldName:   f.Name,
			Description: f.Tag.Get(descriptionTag),
			Type:        f.Type,
			key:         name,
		}
		if name == "" {
			pd.ID = snaker.CamelToSnake(f.Name)
			pd.key = f.Name
		}
		for _, opt := range strings.Split(opts, ",") {
			if opt == "mandatory" {
				pd.Mandatory = true
			}
		}
		if fv := v.Field(i); !fv.IsZero() {
			pd.Default = fmt.Sprint(fv.Interface())
		}
		descs = append(descs, pd)
	}
	return descs
}

func (pd ParameterDescriptor) matches(name string) bool {
	return strings.EqualFold(pd.ID, name) || strings.EqualFold(pd.FieldName, name)
}

// Populate builds the parameters of a macro from the raw parameters of an invocation.
// Names are matched case insensitively and unknown parameters are ignored.
// String values are converted to the field types; lists are comma separated.
func Populate(d *Descriptor, raw *listener.Parameters) (interface{}, error) {
	if d.NewParameters == nil {
		return nil, nil
	}
	params := d.NewParameters()
	descs := d.Parameters()

	input := make(map[string]interface{}, raw.Len())
	raw.Range(func(name, value string) bool {
		for _, pd := range descs {
			if pd.matches(name) {
				input[pd.key] = value
				break
			}
		}
		return true
	})
	for _, pd := range descs {
		if _, ok := input[pd.key]; pd.Mandatory && !ok {
			return nil, &ParameterError{Macro: d.ID, Parameter: pd.ID, Err: ErrMandatoryParameter}
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           params,
		TagName:          paramTag,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create parameters decoder")
	}
	if err := dec.Decode(input); err != nil {
		return nil, &ParameterError{Macro: d.ID, Err: err}
	}
	if v, ok := params.(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, &ParameterError{Macro: d.ID, Err: err}
		}
	}
	return params, nil
}
