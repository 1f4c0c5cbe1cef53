package actionresult

import (
	"time"

	"github.com/resultassert/resultassert/framework/helpers"
	"github.com/resultassert/resultassert/framework/opt"
)

// Options holds the optional settings accepted by the result constructors. Each constructor only
// looks at the settings that mean something for its kind.
type Options struct {
	StatusCode            opt.Maybe[int]
	ContentTypes          []string
	FileDownloadName      string
	EntityTag             string
	LastModified          opt.Maybe[time.Time]
	EnableRangeProcessing bool
	Properties            *AuthenticationProperties
	Fragment              string
	Permanent             bool
	PreserveMethod        bool
	ViewData              ViewData
	TempData              ViewData
}

// Option is a setting for one of the result constructors.
type Option = helpers.ConfigOption[Options]

type optionFunc = helpers.OptionFunc[Options]

func WithStatusCode(statusCode int) Option {
	return optionFunc(func(o *Options) error {
		o.StatusCode = opt.Some(statusCode)
		return nil
	})
}

// WithContentType sets the content type. For an ObjectResult it can be used more than once to
// list several acceptable content types.
func WithContentType(contentType string) Option {
	return optionFunc(func(o *Options) error {
		o.ContentTypes = append(o.ContentTypes, contentType)
		return nil
	})
}

func WithDownloadName(name string) Option {
	return optionFunc(func(o *Options) error {
		o.FileDownloadName = name
		return nil
	})
}

func WithEntityTag(tag string) Option {
	return optionFunc(func(o *Options) error {
		o.EntityTag = tag
		return nil
	})
}

func WithLastModified(t time.Time) Option {
	return optionFunc(func(o *Options) error {
		o.LastModified = opt.Some(t)
		return nil
	})
}

func WithRangeProcessing() Option {
	return optionFunc(func(o *Options) error {
		o.EnableRangeProcessing = true
		return nil
	})
}

func WithProperties(props *AuthenticationProperties) Option {
	return optionFunc(func(o *Options) error {
		o.Properties = props
		return nil
	})
}

func WithFragment(fragment string) Option {
	return optionFunc(func(o *Options) error {
		o.Fragment = fragment
		return nil
	})
}

func WithPermanent() Option {
	return optionFunc(func(o *Options) error {
		o.Permanent = true
		return nil
	})
}

func WithPreserveMethod() Option {
	return optionFunc(func(o *Options) error {
		o.PreserveMethod = true
		return nil
	})
}

func WithViewData(key string, value interface{}) Option {
	return optionFunc(func(o *Options) error {
		if o.ViewData == nil {
			o.ViewData = make(ViewData)
		}
		o.ViewData[key] = value
		return nil
	})
}

func WithTempData(key string, value interface{}) Option {
	return optionFunc(func(o *Options) error {
		if o.TempData == nil {
			o.TempData = make(ViewData)
		}
		o.TempData[key] = value
		return nil
	})
}

func applyOptions(options []Option) Options {
	var o Options
	// None of the options in this package can fail.
	_ = helpers.ApplyOptions[Options, Option](&o, options...)
	return o
}

func (o Options) contentType() string {
	if len(o.ContentTypes) == 0 {
		return ""
	}
	return o.ContentTypes[len(o.ContentTypes)-1]
}

func (o Options) fileResult(contentType string) FileResult {
	return FileResult{
		ContentType:           contentType,
		FileDownloadName:      o.FileDownloadName,
		EntityTag:             o.EntityTag,
		LastModified:          o.LastModified,
		EnableRangeProcessing: o.EnableRangeProcessing,
	}
}
