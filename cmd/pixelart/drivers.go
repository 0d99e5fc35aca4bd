//go:build !js

package main

import (
	"github.com/example/pixelart/internal/driver"
	"github.com/example/pixelart/internal/driver/ebitendriver"
	"github.com/example/pixelart/internal/driver/shinydriver"
)

var drivers = map[string]func(driver.Config) error{
	"shiny":  shinydriver.Run,
	"ebiten": ebitendriver.Run,
}
