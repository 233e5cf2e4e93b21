package nodes

import (
	"github.com/janael-pinheiro/wirelesstag-sdk-golang/pkg/entities"
	"github.com/janael-pinheiro/wirelesstag-sdk-golang/pkg/logging"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingIdentity = errors.New("uuid, name and tag type must be specified for a new tag")
	ErrMissingAddress  = errors.New("persisted node has no address")
	ErrMissingTagType  = errors.New("persisted node has no tag type driver")
	ErrUnknownCommand  = errors.New("unknown command")
)

// Node adapts one wireless tag to a controller node.
type Node struct {
	Name string

	state    *NodeState
	primary  Primary
	reporter Reporter
	log      *logrus.Entry
	commands commandMapping
	pending  *entities.TagReading
}

// NewNode creates the node of a tag seen for the first time.
func NewNode(primary Primary, reporter Reporter, log *logrus.Entry, discovery entities.TagDiscovery) (*Node, error) {
	if discovery.UUID == "" || discovery.Name == "" || discovery.TagType == nil {
		log.Errorf("uuid (%s), name (%s) and type must be specified for a new tag", discovery.UUID, discovery.Name)
		return nil, errors.Wrapf(ErrMissingIdentity, "tag %q", discovery.UUID)
	}

	state := NewNodeState(ResolveIdentity(discovery.UUID), *discovery.TagType, primary.TemperatureUnit())
	state.UUID = discovery.UUID
	state.TagID = discovery.SlaveID

	node := newNode(primary, reporter, log, discovery.Name, state)
	node.pending = discovery.Reading
	node.log.Infof("address=%s name=%s type=%d", state.Address, discovery.Name, state.TagType)
	if state.TagID == nil {
		node.log.Warnf("tag %s has no slave id, %s is not reported", discovery.UUID, entities.DriverTagID)
	}
	return node, nil
}

// RestoreNode rebuilds a node from the drivers persisted by the host. The
// cache is seeded so unchanged values are not reported again.
func RestoreNode(primary Primary, reporter Reporter, log *logrus.Entry, data entities.NodeData) (*Node, error) {
	if data.Address == "" {
		log.Errorf("node %s: %v", data.Name, ErrMissingAddress)
		return nil, ErrMissingAddress
	}

	tagType, found := driverValue(data.Drivers, entities.DriverTagType)
	if !found {
		log.Errorf("node %s: %v", data.Address, ErrMissingTagType)
		return nil, errors.Wrapf(ErrMissingTagType, "node %s", data.Address)
	}
	unit := primary.TemperatureUnit()
	state := NewNodeState(data.Address, int(tagType), unit)
	state.UUID = data.UUID
	if value, ok := driverValue(data.Drivers, entities.DriverTagID); ok {
		tagID := int(value)
		state.TagID = &tagID
	}
	for _, driver := range data.Drivers {
		if driver.Driver == entities.DriverTemperature && driver.UOM != unit.UOM() {
			continue
		}
		state.seed(driver.Driver, driver.Value)
	}

	node := newNode(primary, reporter, log, data.Name, state)
	node.log.Infof("restored address=%s name=%s type=%d", state.Address, data.Name, state.TagType)
	return node, nil
}

func newNode(primary Primary, reporter Reporter, log *logrus.Entry, name string, state *NodeState) *Node {
	return &Node{
		Name:     name,
		state:    state,
		primary:  primary,
		reporter: reporter,
		log:      logging.ForNode(log, state.Kind, name),
		commands: NewCommandMapping(),
	}
}

func driverValue(drivers []entities.DriverValue, driver entities.Driver) (float64, bool) {
	for _, d := range drivers {
		if d.Driver == driver {
			return d.Value, true
		}
	}
	return 0, false
}

func (n *Node) Address() string {
	return n.state.Address
}

func (n *Node) State() *NodeState {
	return n.state
}

// Start runs once the controller has accepted the node.
func (n *Node) Start() error {
	if value, changed := n.state.set(entities.DriverStatus, 1, false); changed {
		if err := n.setDriver(value); err != nil {
			return err
		}
	}

	tagType := n.state.TagType
	identity := entities.TagReading{TagType: &tagType}
	if n.state.TagID != nil {
		tagID := *n.state.TagID
		identity.SlaveID = &tagID
	}
	if err := n.Update(identity, true); err != nil {
		return err
	}

	if n.pending != nil {
		reading := *n.pending
		n.pending = nil
		if err := n.Update(reading, false); err != nil {
			return err
		}
	}
	return n.Query()
}

// Query reports every driver of the node.
func (n *Node) Query() error {
	err := n.reporter.ReportDrivers(n.state.Address, n.state.Values())
	if err != nil {
		n.log.Errorln(err)
		return errors.Wrapf(err, "report drivers of %s", n.state.Address)
	}
	return nil
}

// Update projects a reading and reports the drivers that changed.
func (n *Node) Update(reading entities.TagReading, force bool) error {
	n.state.SetUnit(n.primary.TemperatureUnit())
	for _, value := range n.primary.Policy().Project(reading, n.state, force) {
		if err := n.setDriver(value); err != nil {
			return err
		}
	}
	return nil
}

// RunCommand executes a controller command on the node.
func (n *Node) RunCommand(command string) error {
	function, ok := n.commands[command]
	if !ok {
		n.log.Warnf("command %s not supported", command)
		return errors.Wrap(ErrUnknownCommand, command)
	}
	return n.setDriver(function(n.state))
}

func (n *Node) setDriver(value entities.DriverValue) error {
	n.log.Debugf("%s=%v", value.Driver, value.Value)
	err := n.reporter.SetDriver(n.state.Address, value)
	if err != nil {
		n.log.Errorln(err)
		return errors.Wrapf(err, "set %s on %s", value.Driver, n.state.Address)
	}
	return nil
}
