package nodes

import (
	"math"

	"github.com/janael-pinheiro/wirelesstag-sdk-golang/pkg/entities"
)

const maxBatteryPercent = 100

// ProjectionPolicy holds the optional adjustments applied while projecting.
type ProjectionPolicy struct {
	// ClampBatteryPercent caps BATLVL to [0, 100]. Tags report
	// batteryRemaining above 1 right after a battery swap.
	ClampBatteryPercent bool
}

// Project maps a reading onto the drivers of state with the default policy.
func Project(reading entities.TagReading, state *NodeState, force bool) []entities.DriverValue {
	return ProjectionPolicy{}.Project(reading, state, force)
}

// Project converts every field present in reading, updates the cache of state
// and returns the drivers whose value changed. With force every present field
// supported by the node is returned.
func (p ProjectionPolicy) Project(reading entities.TagReading, state *NodeState, force bool) []entities.DriverValue {
	var changed []entities.DriverValue
	emit := func(driver entities.Driver, value float64) {
		if driverValue, ok := state.set(driver, value, force); ok {
			changed = append(changed, driverValue)
		}
	}

	if reading.TagType != nil {
		emit(entities.DriverTagType, float64(*reading.TagType))
	}
	if reading.SlaveID != nil {
		emit(entities.DriverTagID, float64(*reading.SlaveID))
	}
	if reading.Temperature != nil {
		emit(entities.DriverTemperature, convertTemperature(*reading.Temperature, state.Unit()))
	}
	if reading.BatteryVolt != nil {
		emit(entities.DriverBatteryVolt, round(*reading.BatteryVolt, 3))
	}
	if reading.BatteryRemaining != nil {
		emit(entities.DriverBatteryPct, p.batteryPercent(*reading.BatteryRemaining))
	}
	if reading.Lux != nil {
		emit(entities.DriverLux, math.Trunc(*reading.Lux))
	}
	if reading.Humidity != nil {
		emit(entities.DriverHumidity, math.Trunc(*reading.Humidity))
	}
	if reading.Lit != nil {
		emit(entities.DriverLit, boolValue(*reading.Lit))
	}
	if reading.Motion != nil {
		emit(entities.DriverMotion, *reading.Motion)
	}
	if reading.Orientation != nil {
		emit(entities.DriverOrientation, round(*reading.Orientation, 1))
	}
	if reading.XAxis != nil {
		emit(entities.DriverXAxis, math.Trunc(*reading.XAxis))
	}
	if reading.YAxis != nil {
		emit(entities.DriverYAxis, math.Trunc(*reading.YAxis))
	}
	if reading.ZAxis != nil {
		emit(entities.DriverZAxis, math.Trunc(*reading.ZAxis))
	}
	return changed
}

func (p ProjectionPolicy) batteryPercent(remaining float64) float64 {
	percent := round(remaining*100, 2)
	if p.ClampBatteryPercent {
		percent = math.Max(0, math.Min(maxBatteryPercent, percent))
	}
	return percent
}

func convertTemperature(celsius float64, unit entities.TemperatureUnit) float64 {
	if unit == entities.Fahrenheit {
		return round(celsius*1.8+32.0, 2)
	}
	return round(celsius, 2)
}

func round(value float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(value*scale) / scale
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
