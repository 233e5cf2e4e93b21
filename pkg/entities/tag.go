package entities

// TagReading is one tag entry of the tag manager payload. Sensor fields are
// optional, firmware revisions report different subsets.
type TagReading struct {
	UUID             string   `json:"uuid"`
	Name             string   `json:"name,omitempty"`
	SlaveID          *int     `json:"slaveId,omitempty"`
	TagType          *int     `json:"tagType,omitempty"`
	LastComm         int64    `json:"lastComm,omitempty"`
	Temperature      *float64 `json:"temperature,omitempty"`
	BatteryVolt      *float64 `json:"batteryVolt,omitempty"`
	BatteryRemaining *float64 `json:"batteryRemaining,omitempty"`
	Lux              *float64 `json:"lux,omitempty"`
	Humidity         *float64 `json:"humidity,omitempty"`
	Lit              *bool    `json:"lit,omitempty"`
	Motion           *float64 `json:"motion,omitempty"`
	Orientation      *float64 `json:"orientation,omitempty"`
	XAxis            *float64 `json:"xaxis,omitempty"`
	YAxis            *float64 `json:"yaxis,omitempty"`
	ZAxis            *float64 `json:"zaxis,omitempty"`
}

// TagList is the envelope returned by the tag manager.
type TagList struct {
	Tags []TagReading `json:"d"`
}

type TagDiscovery struct {
	UUID    string
	Name    string
	TagType *int
	SlaveID *int
	Reading *TagReading
}

// Discovery extracts the identity part of a reading.
func (r TagReading) Discovery() TagDiscovery {
	discovery := TagDiscovery{
		UUID:    r.UUID,
		Name:    r.Name,
		TagType: r.TagType,
		SlaveID: r.SlaveID,
	}
	reading := r
	discovery.Reading = &reading
	return discovery
}
