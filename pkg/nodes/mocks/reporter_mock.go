package mocks

import (
	"github.com/janael-pinheiro/wirelesstag-sdk-golang/pkg/entities"
	"github.com/stretchr/testify/mock"
)

type ReporterMock struct {
	mock.Mock
}

func (r *ReporterMock) SetDriver(address string, value entities.DriverValue) error {
	args := r.Called(address, value)
	return args.Error(0)
}

func (r *ReporterMock) ReportDrivers(address string, values []entities.DriverValue) error {
	args := r.Called(address, values)
	return args.Error(0)
}
