package temporal

import (
	"time"

	"github.com/goodsign/monday"
)

// DefaultLocale is used by the locale fallback parser when no locale was supplied
const DefaultLocale = monday.LocaleEnUS

type (
	// Options represents date conversion options
	Options struct {
		// Location is used for zone-less dates and epoch values, time.Local by default
		Location *time.Location
		// Locale is used by the locale fallback parser
		Locale monday.Locale
		// Layout, if set, is tried before the ISO-8601 check
		Layout string
	}

	// Option represents date conversion option
	Option func(o *Options)

	// Projector is a lazy value that projects itself into a date honoring conversion options
	Projector interface {
		Date(opts ...Option) (time.Time, error)
	}
)

// WithLocation sets location
func WithLocation(location *time.Location) Option {
	return func(o *Options) {
		o.Location = location
	}
}

// WithLocale sets locale for the fallback parser
func WithLocale(locale monday.Locale) Option {
	return func(o *Options) {
		o.Locale = locale
	}
}

// WithLayout sets preferred layout; ISO date format (YYYY-MM-DD) is accepted as well
func WithLayout(layout string) Option {
	return func(o *Options) {
		o.Layout = layout
	}
}

func (o *Options) list() []Option {
	return []Option{WithLocation(o.Location), WithLocale(o.Locale), WithLayout(o.Layout)}
}

func newOptions(opts []Option) *Options {
	ret := &Options{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.Location == nil {
		ret.Location = time.Local
	}
	if ret.Locale == "" {
		ret.Locale = DefaultLocale
	}
	return ret
}
