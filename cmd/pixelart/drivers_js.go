//go:build js

package main

import (
	"github.com/example/pixelart/internal/driver"
	"github.com/example/pixelart/internal/driver/ebitendriver"
)

var drivers = map[string]func(driver.Config) error{
	"ebiten": ebitendriver.Run,
}
