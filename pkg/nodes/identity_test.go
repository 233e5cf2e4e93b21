package nodes

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/janael-pinheiro/wirelesstag-sdk-golang/pkg/entities"
	"github.com/stretchr/testify/assert"
)

func TestResolveIdentityIsDeterministic(t *testing.T) {
	id := "7911937f-c758-4b88-a33a-0761ed284f29"
	address := ResolveIdentity(id)

	assert.Equal(t, address, ResolveIdentity(id))
	assert.Len(t, address, AddressLength)
	assert.Equal(t, strings.ToLower(address), address)
}

func TestResolveIdentityIgnoresUUIDFormatting(t *testing.T) {
	id := "7911937f-c758-4b88-a33a-0761ed284f29"
	assert.Equal(t, ResolveIdentity(id), ResolveIdentity(strings.ToUpper(id)))
	assert.Equal(t, ResolveIdentity(id), ResolveIdentity("urn:uuid:"+id))
}

func TestResolveIdentityWhenNotAUUIDThenStillAddress(t *testing.T) {
	address := ResolveIdentity("garage-freezer")
	assert.Len(t, address, AddressLength)
	assert.NotEqual(t, address, ResolveIdentity("garage-fridge"))
}

func TestResolveIdentityHasNoCollisions(t *testing.T) {
	addresses := make(map[string]string)
	for i := 0; i < 500; i++ {
		id := uuid.NewString()
		address := ResolveIdentity(id)
		previous, seen := addresses[address]
		assert.False(t, seen, "%s and %s collide", id, previous)
		addresses[address] = id
	}
}

func TestResolveType(t *testing.T) {
	assert.Equal(t, "wTag12", ResolveType(12))
	assert.Equal(t, "wTag13", ResolveType(13))
}

func TestDriverSetWhenReducedType(t *testing.T) {
	var drivers []entities.Driver
	for _, spec := range DriverSet(12, entities.Fahrenheit) {
		drivers = append(drivers, spec.Driver)
	}
	assert.Equal(t, []entities.Driver{
		entities.DriverStatus,
		entities.DriverTagType,
		entities.DriverTemperature,
		entities.DriverBatteryPct,
		entities.DriverBatteryVolt,
	}, drivers)
}

func TestDriverSetWhenOtherType(t *testing.T) {
	for _, tagType := range []int{0, 13, 21, 52} {
		assert.Len(t, DriverSet(tagType, entities.Fahrenheit), 14)
	}
}

func TestDriverSetTemperatureUOMFollowsUnit(t *testing.T) {
	uom := func(unit entities.TemperatureUnit) entities.UOM {
		for _, spec := range DriverSet(13, unit) {
			if spec.Driver == entities.DriverTemperature {
				return spec.UOM
			}
		}
		return 0
	}
	assert.Equal(t, entities.UOMFahrenheit, uom(entities.Fahrenheit))
	assert.Equal(t, entities.UOMCelsius, uom(entities.Celsius))
}
