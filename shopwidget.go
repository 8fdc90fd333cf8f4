//go:build !cli
// +build !cli

package main

import (
	"log"

	"shopwidget.GO/config"
	_ "shopwidget.GO/custom"
	"shopwidget.GO/server"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()
	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured or not reachable, caching disabled."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, caching disabled."
		}
	}
	log.Println(redisStatus)

	deps := server.NewDeps(server.Options{})
	e := server.New(deps, server.Options{})
	server.Start(e)
}
