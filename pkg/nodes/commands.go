package nodes

import "github.com/janael-pinheiro/wirelesstag-sdk-golang/pkg/entities"

const (
	CommandOn  = "DON"
	CommandOff = "DOF"
)

type commandMapping map[string]func(*NodeState) entities.DriverValue

// NewCommandMapping maps controller commands to their status update. Commands
// are explicit intent and always bypass change suppression.
func NewCommandMapping() commandMapping {
	mapping := make(commandMapping)
	mapping[CommandOn] = setOn
	mapping[CommandOff] = setOff

	return mapping
}

func setOn(state *NodeState) entities.DriverValue {
	return setStatus(state, 1)
}

func setOff(state *NodeState) entities.DriverValue {
	return setStatus(state, 0)
}

func setStatus(state *NodeState, value float64) entities.DriverValue {
	driverValue, _ := state.set(entities.DriverStatus, value, true)
	return driverValue
}
