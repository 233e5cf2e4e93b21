package nodeserver

import (
	"github.com/janael-pinheiro/wirelesstag-sdk-golang/pkg/entities"
	"github.com/sirupsen/logrus"
)

// LogReporter writes driver updates to a logger instead of a controller.
type LogReporter struct {
	log *logrus.Entry
}

func NewLogReporter(log *logrus.Entry) *LogReporter {
	return &LogReporter{log: log}
}

func (r *LogReporter) SetDriver(address string, value entities.DriverValue) error {
	r.log.WithFields(logrus.Fields{
		"address": address,
		"driver":  value.Driver,
		"uom":     value.UOM,
	}).Info(value.Value)
	return nil
}

func (r *LogReporter) ReportDrivers(address string, values []entities.DriverValue) error {
	for _, value := range values {
		if err := r.SetDriver(address, value); err != nil {
			return err
		}
	}
	return nil
}
