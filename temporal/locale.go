package temporal

import (
	"fmt"
	"time"

	"github.com/goodsign/monday"
)

var localeLayouts = map[monday.Locale][]string{
	monday.LocaleEnUS: {"1/2/06", "Jan 2, 2006", "January 2, 2006", "Monday, January 2, 2006"},
	monday.LocaleEnGB: {"02/01/2006", "2 Jan 2006", "2 January 2006", "Monday, 2 January 2006"},
	monday.LocaleDeDE: {"02.01.06", "02.01.2006", "2. January 2006", "Monday, 2. January 2006"},
	monday.LocaleFrFR: {"02/01/2006", "2 Jan 2006", "2 January 2006", "Monday 2 January 2006"},
	monday.LocaleEsES: {"02/01/06", "2 Jan 2006", "2 de January de 2006"},
	monday.LocaleItIT: {"02/01/06", "2 Jan 2006", "2 January 2006"},
	monday.LocalePtBR: {"02/01/06", "2 de Jan de 2006", "2 de January de 2006"},
	monday.LocaleNlNL: {"02-01-06", "2 Jan 2006", "2 January 2006"},
	monday.LocalePlPL: {"02.01.2006", "2 Jan 2006", "2 January 2006"},
	monday.LocaleRuRU: {"02.01.2006", "2 Jan 2006", "2 January 2006"},
}

// LocaleDate parses text with short, medium and long date layouts of the locale,
// month and day names are translated by the locale
func LocaleDate(text string, opts ...Option) (time.Time, error) {
	options := newOptions(opts)
	layouts, ok := localeLayouts[options.Locale]
	if !ok {
		layouts = localeLayouts[DefaultLocale]
	}
	var err error
	for _, layout := range layouts {
		var t time.Time
		if t, err = monday.ParseInLocation(layout, text, options.Location, options.Locale); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: not able to parse %q with %v locale: %w", ErrDate, text, options.Locale, err)
}
