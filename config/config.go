package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"golang.org/x/text/language"

	"github.com/picolog/picolog/core"
	"github.com/picolog/picolog/logger"
	"github.com/picolog/picolog/writer"
)

// envPrefix is prepended to the upper-cased setting name to form the
// environment variable for each setting, e.g. PICOLOG_LEVEL.
const envPrefix = "PICOLOG_"

// settingNames lists the recognized settings in application order.
var settingNames = []string{"level", "format", "locale", "stacktrace", "writer"}

// Load reads a configuration file and applies its settings to the
// logger. The format is detected from the file extension (.yaml, .yml
// or .json). Environment variables of the form PICOLOG_<SETTING>
// override values from the file. Settings with unparseable values are
// skipped; the remaining settings are still applied.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read configuration")
	}

	parser, err := parserFor(path)
	if err != nil {
		return err
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return errors.Wrapf(err, "parse %s", path)
	}

	values := map[string]string{}
	for _, name := range settingNames {
		if k.Exists(name) {
			values[name] = k.String(name)
		}
	}
	mergeEnvironment(values)
	apply(values)
	return nil
}

// LoadEnvironment applies settings from PICOLOG_* environment
// variables only. Unset variables leave the corresponding setting
// untouched.
func LoadEnvironment() {
	values := map[string]string{}
	mergeEnvironment(values)
	apply(values)
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, errors.Errorf("unsupported configuration format %q", filepath.Ext(path))
	}
}

func mergeEnvironment(values map[string]string) {
	for _, name := range settingNames {
		if v, ok := os.LookupEnv(envPrefix + strings.ToUpper(name)); ok {
			values[name] = v
		}
	}
}

// apply pushes the collected settings into the logger. Malformed
// values are reported and skipped so one bad setting cannot block the
// rest.
func apply(values map[string]string) {
	if v, ok := values["level"]; ok {
		if level, ok := core.ParseLevel(v); ok {
			logger.SetLevel(level)
		} else {
			core.ReportWarningf("unknown severity level %q", v)
		}
	}
	if v, ok := values["format"]; ok {
		logger.SetPattern(v)
	}
	if v, ok := values["locale"]; ok {
		if tag, err := language.Parse(strings.ReplaceAll(v, "_", "-")); err == nil {
			logger.SetLocale(tag)
		} else {
			core.ReportWarningf("unknown locale %q", v)
		}
	}
	if v, ok := values["stacktrace"]; ok {
		if depth, err := strconv.Atoi(v); err == nil {
			logger.SetMaxStackTraceDepth(depth)
		} else {
			core.ReportWarningf("invalid stack trace depth %q", v)
		}
	}
	if v, ok := values["writer"]; ok {
		w, err := writer.New(v)
		if err != nil {
			core.ReportWarningf("cannot create writer %q: %v", v, err)
		} else {
			logger.SetWriter(w)
		}
	}
}
