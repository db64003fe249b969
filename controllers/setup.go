package controllers

import (
	"github.com/barberflow/barberflow-api/booking"
	"github.com/barberflow/barberflow-api/config"
)

var (
	cfg     *config.Config
	manager *booking.Manager
)

// Setup hands the loaded config and booking manager to the handlers.
// Called once from main before routes are registered.
func Setup(c *config.Config, m *booking.Manager) {
	cfg = c
	manager = m
}
