package nodes

import "github.com/janael-pinheiro/wirelesstag-sdk-golang/pkg/entities"

// Reporter surfaces driver values to the controller.
type Reporter interface {
	SetDriver(address string, value entities.DriverValue) error
	ReportDrivers(address string, values []entities.DriverValue) error
}

// Primary is the controller node a tag node inherits its settings from.
type Primary interface {
	TemperatureUnit() entities.TemperatureUnit
	Policy() ProjectionPolicy
}
