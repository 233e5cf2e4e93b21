package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestCreateLogger(t *testing.T) {
	level := "info"
	log := NewLogrus(level, os.Stdout)

	assert.Equal(t, log.level, level)
}

func TestGetLogger(t *testing.T) {
	level := "info"
	log := NewLogrus(level, os.Stdout)
	logger := log.Get("Testing")
	assert.Equal(t, logger.Logger.Out, os.Stdout)
	assert.Equal(t, "Testing", logger.Data["Context"])
}

func TestGetLoggerWhenInvalidLevelThenInfo(t *testing.T) {
	log := NewLogrus("chatty", os.Stdout)
	logger := log.Get("Testing")
	assert.Equal(t, logrus.InfoLevel, logger.Logger.GetLevel())
}

func TestForNode(t *testing.T) {
	var output bytes.Buffer
	logger := ForNode(NewLogrus("debug", &output).Get("nodes"), "wTag13", "Garage Freezer")
	logger.Info("started")

	assert.Equal(t, "wTag13", logger.Data["node"])
	assert.Equal(t, "Garage Freezer", logger.Data["name"])
	assert.Contains(t, output.String(), "node=wTag13")
	assert.Contains(t, output.String(), "Context=nodes")
}
