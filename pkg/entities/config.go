package entities

type IntegrationConfig struct {
	Address             string            `yaml:"address"`
	Name                string            `yaml:"name"`
	LogLevel            string            `yaml:"logLevel"`
	TemperatureUnit     string            `yaml:"temperatureUnit"`
	ClampBatteryPercent bool              `yaml:"clampBatteryPercent"`
	DuplicationFilter   DuplicationConfig `yaml:"duplicationFilter"`
}

type DuplicationConfig struct {
	Enabled           bool    `yaml:"enabled"`
	Capacity          uint    `yaml:"capacity"`
	Probability       float64 `yaml:"probability"`
	ResetUsagePercent float32 `yaml:"resetUsagePercent"`
}

// Unit maps the configured display unit, Fahrenheit unless "C"/"celsius" is given.
func (c IntegrationConfig) Unit() TemperatureUnit {
	switch c.TemperatureUnit {
	case "C", "c", "celsius", "Celsius":
		return Celsius
	default:
		return Fahrenheit
	}
}
