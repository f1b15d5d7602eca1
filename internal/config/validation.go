package config

import (
	"errors"
	"net/url"
	"path/filepath"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var extensionRe = regexp.MustCompile(`^\.[^./\\]+$`)

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Prefix, validation.By(originURL)),
		validation.Field(&c.Format, validation.Required, validation.In(FormatText, FormatJSON)),
		validation.Field(&c.Extensions, validation.Required, validation.Each(validation.Required, validation.Match(extensionRe))),
		validation.Field(&c.Exclude, validation.Each(validation.By(globPattern))),
		validation.Field(&c.Jobs, validation.Min(0)),
	)
}

// originURL accepts an absolute URL with a scheme and a host, such as
// "https://example.com" or "https://example.com/docs/".
func originURL(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return errors.New("must be a valid URL")
	}
	if u.Scheme == "" || u.Host == "" {
		return errors.New("must be an absolute URL with scheme and host")
	}
	return nil
}

func globPattern(value any) error {
	s, _ := value.(string)
	if _, err := filepath.Match(s, ""); err != nil {
		return errors.New("must be a valid glob pattern")
	}
	return nil
}
