package entities

type Driver string

const (
	DriverStatus      Driver = "ST"
	DriverTagID       Driver = "GPV"
	DriverTagType     Driver = "GV1"
	DriverTemperature Driver = "CLITEMP"
	DriverBatteryPct  Driver = "BATLVL"
	DriverLux         Driver = "LUMIN"
	DriverHumidity    Driver = "CLIHUM"
	DriverBatteryVolt Driver = "CV"
	DriverMotion      Driver = "GV2"
	DriverOrientation Driver = "GV3"
	DriverXAxis       Driver = "GV4"
	DriverYAxis       Driver = "GV5"
	DriverZAxis       Driver = "GV6"
	DriverLit         Driver = "GV7"
)

// UOM is the unit of measure code understood by the controller display layer.
type UOM int

const (
	UOMBoolean     UOM = 2
	UOMCelsius     UOM = 4
	UOMFahrenheit  UOM = 17
	UOMAbsHumidity UOM = 21
	UOMIndex       UOM = 25
	UOMLux         UOM = 36
	UOMPercent     UOM = 51
	UOMRaw         UOM = 56
	UOMVolt        UOM = 72
	UOMOffOn       UOM = 78
)

type TemperatureUnit int

const (
	Celsius TemperatureUnit = iota
	Fahrenheit
)

func (u TemperatureUnit) UOM() UOM {
	if u == Fahrenheit {
		return UOMFahrenheit
	}
	return UOMCelsius
}

type DriverSpec struct {
	Driver Driver `yaml:"driver"`
	UOM    UOM    `yaml:"uom"`
}

type DriverValue struct {
	Driver Driver  `json:"driver" yaml:"driver"`
	Value  float64 `json:"value" yaml:"value"`
	UOM    UOM     `json:"uom" yaml:"uom"`
}

// NodeData is a node as persisted by the host framework.
type NodeData struct {
	Address string        `yaml:"address"`
	Name    string        `yaml:"name"`
	UUID    string        `yaml:"uuid"`
	Drivers []DriverValue `yaml:"drivers"`
}
