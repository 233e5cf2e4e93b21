package nodes

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/janael-pinheiro/wirelesstag-sdk-golang/pkg/entities"
)

const (
	// AddressLength is the controller limit on node addresses.
	AddressLength = 14
	kindPrefix    = "wTag"
	reducedType   = 12
)

// ResolveIdentity derives a stable node address from a tag uuid.
func ResolveIdentity(id string) string {
	key := []byte(strings.ToLower(strings.TrimSpace(id)))
	if parsed, err := uuid.Parse(id); err == nil {
		key = parsed[:]
	}
	sum := sha1.Sum(key)
	return hex.EncodeToString(sum[:])[:AddressLength]
}

// ResolveType returns the node kind id for a tag type.
func ResolveType(tagType int) string {
	return kindPrefix + strconv.Itoa(tagType)
}

// DriverSet lists the drivers a node of the given tag type exposes. The
// temperature UOM follows the display unit.
func DriverSet(tagType int, unit entities.TemperatureUnit) []entities.DriverSpec {
	if tagType == reducedType {
		return []entities.DriverSpec{
			{Driver: entities.DriverStatus, UOM: entities.UOMBoolean},
			{Driver: entities.DriverTagType, UOM: entities.UOMOffOn},
			{Driver: entities.DriverTemperature, UOM: unit.UOM()},
			{Driver: entities.DriverBatteryPct, UOM: entities.UOMPercent},
			{Driver: entities.DriverBatteryVolt, UOM: entities.UOMVolt},
		}
	}
	return []entities.DriverSpec{
		{Driver: entities.DriverStatus, UOM: entities.UOMBoolean},
		{Driver: entities.DriverTagID, UOM: entities.UOMRaw},
		{Driver: entities.DriverTagType, UOM: entities.UOMRaw},
		{Driver: entities.DriverTemperature, UOM: unit.UOM()},
		{Driver: entities.DriverBatteryPct, UOM: entities.UOMPercent},
		{Driver: entities.DriverLux, UOM: entities.UOMLux},
		{Driver: entities.DriverHumidity, UOM: entities.UOMAbsHumidity},
		{Driver: entities.DriverBatteryVolt, UOM: entities.UOMVolt},
		{Driver: entities.DriverMotion, UOM: entities.UOMIndex},
		{Driver: entities.DriverOrientation, UOM: entities.UOMRaw},
		{Driver: entities.DriverXAxis, UOM: entities.UOMRaw},
		{Driver: entities.DriverYAxis, UOM: entities.UOMRaw},
		{Driver: entities.DriverZAxis, UOM: entities.UOMRaw},
		{Driver: entities.DriverLit, UOM: entities.UOMOffOn},
	}
}
