package utils

import (
	"os"
	"path/filepath"

	"github.com/janael-pinheiro/wirelesstag-sdk-golang/pkg/entities"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type config interface {
	entities.IntegrationConfig | []entities.NodeData
}

func readTextFile(filepathName string) ([]byte, error) {
	fileContent, err := os.ReadFile(filepath.Clean(filepathName))
	return fileContent, err
}

func ConfigurationParser[T config](filepathName string, configEntity T) (T, error) {
	fileContent, err := readTextFile(filepathName)
	if err != nil {
		return configEntity, errors.Wrapf(err, "read %s", filepathName)
	}

	err = yaml.Unmarshal(fileContent, &configEntity)
	return configEntity, errors.Wrapf(err, "parse %s", filepathName)
}
