package config

import (
	"os"
	"strconv"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "KILO_"

// Environment variable names.
const (
	EnvLogLevel       = EnvPrefix + "LOG_LEVEL"
	EnvLogFile        = EnvPrefix + "LOG_FILE"
	EnvQuitTimes      = EnvPrefix + "QUIT_TIMES"
	EnvMessageTimeout = EnvPrefix + "MESSAGE_TIMEOUT"
	EnvWASD           = EnvPrefix + "WASD"
)

// ApplyEnv overrides settings from KILO_ environment variables.
// Empty string values are treated as valid values, not as unset.
func (c *Config) ApplyEnv() error {
	if val, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Logging.Level = val
	}
	if val, ok := os.LookupEnv(EnvLogFile); ok {
		c.Logging.File = val
	}

	if err := envInt(EnvQuitTimes, "editor.quit_times", &c.Editor.QuitTimes); err != nil {
		return err
	}
	if err := envInt(EnvMessageTimeout, "editor.message_timeout", &c.Editor.MessageTimeout); err != nil {
		return err
	}

	if val, ok := os.LookupEnv(EnvWASD); ok {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return &ValidationError{Path: "editor.wasd_movement", Message: EnvWASD + " is not a boolean", Value: val}
		}
		c.Editor.WASDMovement = b
	}

	return nil
}

func envInt(name, path string, dst *int) error {
	val, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return &ValidationError{Path: path, Message: name + " is not an integer", Value: val}
	}
	*dst = n
	return nil
}
