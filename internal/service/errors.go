package service

import "errors"

var (
	// Building errors
	ErrBuildingNotFound = errors.New("building not found")

	// Vehicle errors
	ErrVehicleNotFound        = errors.New("vehicle not found")
	ErrPlateAlreadyRegistered = errors.New("vehicle with this license plate already registered in this building")
	ErrInvalidPlate           = errors.New("license plate must contain 4 to 20 alphanumeric characters")
)
