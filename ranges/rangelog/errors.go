package rangelog

import "errors"

var (
	// ErrInvalidConfig is returned by [Config.Validate], and therefore by
	// [Trace] and [FromSettings], for an unusable configuration.
	ErrInvalidConfig = errors.New("rangelog: invalid config")

	// ErrSettingsNotFound is returned by [FromSettings] when the prefix
	// does not name a section of the settings map.
	ErrSettingsNotFound = errors.New("rangelog: settings section not found")

	// ErrSettingType is returned by [FromSettings] when a key holds a value
	// of the wrong type.
	ErrSettingType = errors.New("rangelog: setting has the wrong type")
)
