package main

import (
	"github.com/tasfia236/TravelTourismServer/startup"
	"github.com/tasfia236/TravelTourismServer/startup/config"
)

func main() {
	cfg := config.NewConfig()
	server := startup.NewServer(cfg)
	server.Start()
}
