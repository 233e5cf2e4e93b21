package nodeserver

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	bloomFilter "github.com/bits-and-blooms/bloom/v3"
	"github.com/janael-pinheiro/wirelesstag-sdk-golang/pkg/entities"
	"github.com/janael-pinheiro/wirelesstag-sdk-golang/pkg/nodes"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	DUPLICATION_FILTER            = "0"
	FILTER_CAPACITY               = "100000"
	DUPLICATION_PROBABILITY       = "0.01"
	RESET_FILTER_USAGE_PERCENTAGE = "75"
)

var (
	ErrNodeNotFound  = errors.New("node not found")
	ErrInvalidTag    = errors.New("tag entry has no uuid")
	ErrAlreadyExists = errors.New("node already exists")
)

// Controller is the root node of the integration. It owns the tag nodes and
// routes telemetry and commands to them.
type Controller struct {
	config   entities.IntegrationConfig
	reporter nodes.Reporter
	log      *logrus.Entry
	nodes    map[string]*nodes.Node
	tags     map[string]string
	unit     entities.TemperatureUnit

	filters                         map[string]*bloomFilter.BloomFilter
	maximumPercentageFilterUsage    float32
	filterCapacity                  uint
	duplicationProbability          float64
	isMeasurementDuplicatedFunction func(string, int64) bool
}

// NewController builds the controller. Duplication filter settings from the
// configuration can be overridden by environment variables.
func NewController(conf entities.IntegrationConfig, reporter nodes.Reporter, log *logrus.Entry) (*Controller, error) {
	controller := &Controller{
		config:   conf,
		reporter: reporter,
		log:      log,
		nodes:    make(map[string]*nodes.Node),
		tags:     make(map[string]string),
		unit:     conf.Unit(),
		filters:  make(map[string]*bloomFilter.BloomFilter),
	}

	filter := conf.DuplicationFilter
	enabled := getValueFromEnvironmentVariable("DUPLICATION_FILTER", boolDefault(filter.Enabled))
	capacity, err := strconv.ParseUint(getValueFromEnvironmentVariable("FILTER_CAPACITY", uintDefault(filter.Capacity, FILTER_CAPACITY)), 10, 0)
	if err != nil {
		return nil, errors.Wrap(err, "FILTER_CAPACITY")
	}
	probability, err := strconv.ParseFloat(getValueFromEnvironmentVariable("DUPLICATION_PROBABILITY", floatDefault(filter.Probability, DUPLICATION_PROBABILITY)), 64)
	if err != nil {
		return nil, errors.Wrap(err, "DUPLICATION_PROBABILITY")
	}
	usage, err := strconv.ParseFloat(getValueFromEnvironmentVariable("RESET_FILTER_USAGE_PERCENTAGE", floatDefault(float64(filter.ResetUsagePercent), RESET_FILTER_USAGE_PERCENTAGE)), 32)
	if err != nil {
		return nil, errors.Wrap(err, "RESET_FILTER_USAGE_PERCENTAGE")
	}
	controller.filterCapacity = uint(capacity)
	controller.duplicationProbability = probability
	controller.maximumPercentageFilterUsage = float32(usage)

	duplicationFilterFunctionMapping := map[string]func(string, int64) bool{
		DUPLICATION_FILTER: func(string, int64) bool { return false },
		"1":                controller.isMeasurementDuplicated,
	}
	var ok bool
	controller.isMeasurementDuplicatedFunction, ok = duplicationFilterFunctionMapping[enabled]
	if !ok {
		return nil, errors.Errorf("DUPLICATION_FILTER must be 0 or 1, got %q", enabled)
	}
	return controller, nil
}

func (c *Controller) TemperatureUnit() entities.TemperatureUnit {
	return c.unit
}

// SetTemperatureUnit changes the display unit inherited by every node.
func (c *Controller) SetTemperatureUnit(unit entities.TemperatureUnit) {
	c.unit = unit
}

func (c *Controller) Policy() nodes.ProjectionPolicy {
	return nodes.ProjectionPolicy{ClampBatteryPercent: c.config.ClampBatteryPercent}
}

// AddTag creates and starts the node of a newly discovered tag.
func (c *Controller) AddTag(discovery entities.TagDiscovery) (*nodes.Node, error) {
	if address := c.addressOf(discovery.UUID); c.nodes[address] != nil {
		return nil, errors.Wrapf(ErrAlreadyExists, "address %s", address)
	}
	node, err := nodes.NewNode(c, c.reporter, c.log, discovery)
	if err != nil {
		return nil, errors.Wrap(err, "add tag")
	}
	c.register(node)
	if discovery.Reading != nil {
		c.markSeen(discovery.UUID, discovery.Reading.LastComm)
	}
	return node, node.Start()
}

// RestoreNodes rebuilds the nodes persisted by the host. Nodes that cannot be
// restored are logged and skipped.
func (c *Controller) RestoreNodes(data []entities.NodeData) error {
	var failed int
	for _, nodeData := range data {
		node, err := nodes.RestoreNode(c, c.reporter, c.log, nodeData)
		if err != nil {
			failed++
			continue
		}
		if id := node.State().UUID; id != "" && nodes.ResolveIdentity(id) != node.Address() {
			c.log.Warnf("node %s keeps its persisted address, tag %s derives %s", node.Address(), id, nodes.ResolveIdentity(id))
		}
		c.register(node)
		if err := node.Start(); err != nil {
			return err
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d nodes could not be restored", failed, len(data))
	}
	return nil
}

func (c *Controller) register(node *nodes.Node) {
	c.nodes[node.Address()] = node
	c.filters[node.Address()] = bloomFilter.NewWithEstimates(c.filterCapacity, c.duplicationProbability)
	if id := node.State().UUID; id != "" {
		c.tags[nodes.ResolveIdentity(id)] = node.Address()
	}
}

// addressOf returns the address of the node owning a tag. Restored nodes may
// live under an address that was not derived from their uuid.
func (c *Controller) addressOf(id string) string {
	derived := nodes.ResolveIdentity(id)
	if address, ok := c.tags[derived]; ok {
		return address
	}
	return derived
}

func (c *Controller) Node(address string) (*nodes.Node, error) {
	node, ok := c.nodes[address]
	if !ok {
		return nil, errors.Wrap(ErrNodeNotFound, address)
	}
	return node, nil
}

// Nodes returns the registered nodes ordered by address.
func (c *Controller) Nodes() []*nodes.Node {
	addresses := make([]string, 0, len(c.nodes))
	for address := range c.nodes {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)
	list := make([]*nodes.Node, 0, len(addresses))
	for _, address := range addresses {
		list = append(list, c.nodes[address])
	}
	return list
}

func (c *Controller) RemoveNode(address string) error {
	node, ok := c.nodes[address]
	if !ok {
		return errors.Wrap(ErrNodeNotFound, address)
	}
	if id := node.State().UUID; id != "" {
		delete(c.tags, nodes.ResolveIdentity(id))
	}
	delete(c.nodes, address)
	delete(c.filters, address)
	c.log.Infof("removed node %s", address)
	return nil
}

// HandlePayload decodes a tag manager payload and applies every tag to its node,
// creating the nodes of tags not seen before.
func (c *Controller) HandlePayload(body []byte) error {
	tags, err := DecodeTagList(body)
	if err != nil {
		c.log.Errorln(err)
		return err
	}
	var failed int
	for _, tag := range tags.Tags {
		if err := c.HandleReading(tag); err != nil {
			c.log.Errorf("tag %s: %v", tag.UUID, err)
			failed++
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d tags failed", failed, len(tags.Tags))
	}
	return nil
}

func (c *Controller) HandleReading(reading entities.TagReading) error {
	address := c.addressOf(reading.UUID)
	node, ok := c.nodes[address]
	if !ok {
		_, err := c.AddTag(reading.Discovery())
		return err
	}
	if c.isMeasurementDuplicatedFunction(address, reading.LastComm) {
		c.log.Debugf("skipping duplicated reading of %s at %d", address, reading.LastComm)
		return nil
	}
	c.markSeen(reading.UUID, reading.LastComm)
	return node.Update(reading, false)
}

func (c *Controller) HandleCommand(command, address string) error {
	node, err := c.Node(address)
	if err != nil {
		c.log.Warnln(err)
		return err
	}
	return node.RunCommand(command)
}

// QueryAll reports every driver of every node.
func (c *Controller) QueryAll() error {
	for _, node := range c.Nodes() {
		if err := node.Query(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) markSeen(id string, lastComm int64) {
	if lastComm == 0 {
		return
	}
	address := c.addressOf(id)
	if _, ok := c.filters[address]; !ok {
		return
	}
	c.filters[address] = c.updateDuplicationFilter(address, lastComm)
}

func (c *Controller) isMeasurementDuplicated(address string, lastComm int64) bool {
	filter, ok := c.filters[address]
	if !ok || lastComm == 0 {
		return false
	}
	return filter.Test([]byte(strconv.FormatInt(lastComm, 10)))
}

func (c *Controller) updateDuplicationFilter(address string, lastComm int64) *bloomFilter.BloomFilter {
	c.resetDuplicationFilter(address)
	return c.filters[address].Add([]byte(strconv.FormatInt(lastComm, 10)))
}

func (c *Controller) resetDuplicationFilter(address string) {
	approximatedFilterSize := c.filters[address].ApproximatedSize()
	filterCapacity := c.filterCapacity
	currentPercentageFilterUsage := (float32(approximatedFilterSize) / float32(filterCapacity)) * 100
	if currentPercentageFilterUsage >= c.maximumPercentageFilterUsage {
		c.filters[address].ClearAll()
	}
}

// DecodeTagList parses a tag manager payload. Every entry needs a uuid, the
// sensor fields are optional.
func DecodeTagList(body []byte) (entities.TagList, error) {
	var tags entities.TagList
	if err := json.Unmarshal(body, &tags); err != nil {
		return tags, errors.Wrap(err, "decode tag list")
	}
	for i, tag := range tags.Tags {
		if tag.UUID == "" {
			return tags, errors.Wrapf(ErrInvalidTag, "entry %d", i)
		}
	}
	return tags, nil
}

func getValueFromEnvironmentVariable(variableName, defaultValue string) string {
	value := os.Getenv(variableName)
	if value != "" {
		return value
	}
	return defaultValue
}

func boolDefault(enabled bool) string {
	if enabled {
		return "1"
	}
	return DUPLICATION_FILTER
}

func uintDefault(value uint, fallback string) string {
	if value == 0 {
		return fallback
	}
	return strconv.FormatUint(uint64(value), 10)
}

func floatDefault(value float64, fallback string) string {
	if value == 0 {
		return fallback
	}
	return fmt.Sprint(value)
}
