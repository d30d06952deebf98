package coercion

import (
	"reflect"
	"time"

	"github.com/goodsign/monday"
	"github.com/viant/coercion/enum"
	"github.com/viant/tagly/format/text"
	"go.uber.org/zap"
)

// Populator creates structured instances and maps, it is implemented by conv.Converter
type Populator interface {
	FromMap(aMap map[string]interface{}, rType reflect.Type) (interface{}, error)
	FromSlice(values []interface{}, rType reflect.Type) (interface{}, error)
	ToMap(value interface{}) (map[string]interface{}, error)
}

type (
	// Options represents coercer options
	Options struct {
		// Logger, zap.L() is used when nil
		Logger *zap.Logger
		// Location is used for zone-less dates, epoch values and calendars, time.Local when nil
		Location *time.Location
		// Locale is used by the locale date fallback parser
		Locale monday.Locale
		// DateLayout, if set, is tried before the date heuristics
		DateLayout string
		// KeyCaseFormat re-cases untagged struct field names when instances are converted to maps
		KeyCaseFormat text.CaseFormat
		// TagName is the struct tag used to name fields, json by default
		TagName string
		// ClonePointers copies pointed data instead of sharing it when instances are populated
		ClonePointers bool
		// UnexportedFields lets instances and maps read and populate unexported fields
		UnexportedFields bool
		// Registry holds enumerations addressed by ENUM tag
		Registry *enum.Registry
		// Populator creates instances, conv.Converter configured with the options above when nil
		Populator Populator
	}

	// Option represents coercer option
	Option func(o *Options)
)

// DefaultOptions returns default options
func DefaultOptions() *Options {
	return &Options{TagName: "json"}
}

// Apply applies options
func (o *Options) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// WithLogger sets logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithLocation sets date location
func WithLocation(location *time.Location) Option {
	return func(o *Options) {
		o.Location = location
	}
}

// WithLocale sets date fallback locale
func WithLocale(locale monday.Locale) Option {
	return func(o *Options) {
		o.Locale = locale
	}
}

// WithDateLayout sets preferred date layout
func WithDateLayout(layout string) Option {
	return func(o *Options) {
		o.DateLayout = layout
	}
}

// WithKeyCaseFormat sets case format of map keys produced from untagged struct fields
func WithKeyCaseFormat(caseFormat text.CaseFormat) Option {
	return func(o *Options) {
		o.KeyCaseFormat = caseFormat
	}
}

// WithTagName sets struct tag name
func WithTagName(name string) Option {
	return func(o *Options) {
		o.TagName = name
	}
}

// WithClonePointers makes populated instances hold copies of pointed data
func WithClonePointers() Option {
	return func(o *Options) {
		o.ClonePointers = true
	}
}

// WithUnexportedFields allows population of unexported fields
func WithUnexportedFields() Option {
	return func(o *Options) {
		o.UnexportedFields = true
	}
}

// WithRegistry sets enum registry
func WithRegistry(registry *enum.Registry) Option {
	return func(o *Options) {
		o.Registry = registry
	}
}

// WithEnums registers enumerations
func WithEnums(types ...*enum.Type) Option {
	return func(o *Options) {
		if o.Registry == nil {
			o.Registry = enum.NewRegistry()
		}
		o.Registry.Register(types...)
	}
}

// WithPopulator sets instance populator
func WithPopulator(populator Populator) Option {
	return func(o *Options) {
		o.Populator = populator
	}
}
