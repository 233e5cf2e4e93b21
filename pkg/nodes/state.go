package nodes

import "github.com/janael-pinheiro/wirelesstag-sdk-golang/pkg/entities"

// NodeState is the identity of one tag plus the last value reported for each
// driver it supports. A driver missing from the cache has never been reported.
type NodeState struct {
	Address string
	Kind    string
	UUID    string
	TagType int
	TagID   *int

	unit    entities.TemperatureUnit
	drivers []entities.DriverSpec
	values  map[entities.Driver]float64
}

func NewNodeState(address string, tagType int, unit entities.TemperatureUnit) *NodeState {
	return &NodeState{
		Address: address,
		Kind:    ResolveType(tagType),
		TagType: tagType,
		unit:    unit,
		drivers: DriverSet(tagType, unit),
		values:  make(map[entities.Driver]float64),
	}
}

func (s *NodeState) Unit() entities.TemperatureUnit {
	return s.unit
}

// SetUnit switches the display unit. The cached temperature is dropped since it
// is held in the previous unit.
func (s *NodeState) SetUnit(unit entities.TemperatureUnit) {
	if unit == s.unit {
		return
	}
	s.unit = unit
	s.drivers = DriverSet(s.TagType, unit)
	delete(s.values, entities.DriverTemperature)
}

func (s *NodeState) Supports(driver entities.Driver) bool {
	_, ok := s.uom(driver)
	return ok
}

func (s *NodeState) Value(driver entities.Driver) (float64, bool) {
	value, ok := s.values[driver]
	return value, ok
}

// Values returns every supported driver in driver set order, zero for the ones
// never reported.
func (s *NodeState) Values() []entities.DriverValue {
	values := make([]entities.DriverValue, 0, len(s.drivers))
	for _, spec := range s.drivers {
		values = append(values, entities.DriverValue{Driver: spec.Driver, Value: s.values[spec.Driver], UOM: spec.UOM})
	}
	return values
}

func (s *NodeState) uom(driver entities.Driver) (entities.UOM, bool) {
	for _, spec := range s.drivers {
		if spec.Driver == driver {
			return spec.UOM, true
		}
	}
	return 0, false
}

// set caches value and reports whether it has to be sent to the controller.
func (s *NodeState) set(driver entities.Driver, value float64, force bool) (entities.DriverValue, bool) {
	uom, ok := s.uom(driver)
	if !ok {
		return entities.DriverValue{}, false
	}
	if cached, seen := s.values[driver]; seen && !force && cached == value {
		return entities.DriverValue{}, false
	}
	s.values[driver] = value
	return entities.DriverValue{Driver: driver, Value: value, UOM: uom}, true
}

// seed loads a persisted value without reporting it.
func (s *NodeState) seed(driver entities.Driver, value float64) {
	if s.Supports(driver) {
		s.values[driver] = value
	}
}
