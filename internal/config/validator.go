package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("cachedir", isUsableDirectory); err != nil {
		return nil, nil, fmt.Errorf("failed to register cachedir validation: %w", err)
	}
	if err := validate.RegisterTranslation("cachedir", trans, func(ut ut.Translator) error {
		return ut.Add("cachedir", "{0} must be a directory or a path that can be created", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("cachedir", strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register cachedir translation: %w", err)
	}

	validate.RegisterStructValidation(validateCacheBackend, Config{})
	if err := validate.RegisterTranslation("required_for_backend", trans, func(ut ut.Translator) error {
		return ut.Add("required_for_backend", "{0} is required when cache.backend is {1}", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("required_for_backend", strings.TrimPrefix(fe.Namespace(), "Config."), fe.Param())
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register required_for_backend translation: %w", err)
	}

	return validate, trans, nil
}

// isUsableDirectory accepts an empty path, an existing directory, or a missing path
// whose nearest existing ancestor is a directory.
func isUsableDirectory(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return true
	}

	for {
		info, err := os.Stat(path)
		if err == nil {
			return info.IsDir()
		}
		if !os.IsNotExist(err) {
			return false
		}
		parent := filepath.Dir(path)
		if parent == path {
			return false
		}
		path = parent
	}
}

func validateCacheBackend(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)
	if cfg.Cache.Backend == CacheBackendRedis && cfg.Redis.URL == "" {
		sl.ReportError(cfg.Redis.URL, "redis.url", "URL", "required_for_backend", CacheBackendRedis)
	}
}
