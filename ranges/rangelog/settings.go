package rangelog

import (
	"fmt"
	"math"
	"reflect"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/mitchellh/mapstructure"
)

const settingsSeparator = "."

// FromSettings reads a Config from a nested settings map, such as a decoded
// YAML or JSON document, at the dot-notation path prefix. An empty prefix
// reads the top level. Keys match the mapstructure tags of [Config];
// unknown keys are ignored. The result is defaulted and validated.
//
//	// pipeline:
//	//   trace:
//	//     level: info
//	//     sample_every: 100
//	cfg, err := rangelog.FromSettings(settings, "pipeline.trace")
func FromSettings(settings map[string]any, prefix string) (Config, error) {
	k := koanf.New(settingsSeparator)
	if err := k.Load(confmap.Provider(settings, settingsSeparator), nil); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrSettingType, err)
	}
	if prefix != "" {
		if _, ok := k.Get(prefix).(map[string]any); !ok {
			return Config{}, fmt.Errorf("%w: %q", ErrSettingsNotFound, prefix)
		}
	}

	var cfg Config
	err := k.UnmarshalWithConf(prefix, &cfg, koanf.UnmarshalConf{
		Tag: "mapstructure",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.DecodeHookFuncKind(exactIntegers),
			Result:     &cfg,
			TagName:    "mapstructure",
		},
	})
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrSettingType, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// exactIntegers rejects numbers that would change value when stored in an
// int field: fractional or out-of-range floats (JSON decodes every number
// as float64) and unsigned values above math.MaxInt.
func exactIntegers(from, to reflect.Kind, data any) (any, error) {
	switch to {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}
	v := reflect.ValueOf(data)
	switch from {
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if f != math.Trunc(f) || f < math.MinInt || f >= math.MaxInt {
			return nil, fmt.Errorf("%v is not an integer in range", data)
		}
		return int(f), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Uint() > math.MaxInt {
			return nil, fmt.Errorf("%v is out of range", data)
		}
		return int(v.Uint()), nil
	default:
		return data, nil
	}
}
