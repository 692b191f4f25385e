package main

import (
	"flag"
	"log"
	"os"

	"natcatalog_api/config"
	"natcatalog_api/internal/natcatalog/app"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "путь к файлу конфигурации")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("конфигурация %s: %v", *configPath, err)
	}
	secrets := config.GetSecrets()

	server := app.NewServer(cfg, secrets, os.Stdout)
	if err := server.Run(); err != nil {
		log.Fatalf("сервер остановлен: %v", err)
	}
}
