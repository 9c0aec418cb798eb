package config

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Server struct {
	Port int `yaml:"port"`
}

type Store struct {
	// Driver selects the persistence strategy: "local" (file-backed, per
	// machine, cross-process sync via storage events) or "postgres"
	// (remote-authoritative with broker-propagated change feeds).
	Driver  string `yaml:"driver"`
	DataDir string `yaml:"data_dir"`
}

type DB struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"password"`
	Name string `yaml:"database"`
}

type MQ struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"password"`
}

type Admin struct {
	// Shared static credential compared server-side.
	Password string `yaml:"password"`
}

type Chat struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type App struct {
	Server   Server `yaml:"server"`
	Store    Store  `yaml:"store"`
	Database DB     `yaml:"database"`
	Rabbit   MQ     `yaml:"rabbitmq"`
	Admin    Admin  `yaml:"admin"`
	Chat     Chat   `yaml:"chat"`
}

func Load(path string) (App, error) {
	_ = godotenv.Load()

	b, err := os.ReadFile(path)
	if err != nil {
		return App{}, fmt.Errorf("read config: %w", err)
	}
	a := defaults()
	if err := yaml.Unmarshal(b, &a); err != nil {
		return App{}, fmt.Errorf("parse config: %w", err)
	}
	applyEnv(&a)
	if a.Store.Driver != "local" && a.Store.Driver != "postgres" {
		return App{}, fmt.Errorf("invalid config: unknown store driver %q", a.Store.Driver)
	}
	if a.Store.Driver == "postgres" && (a.Database.Host == "" || a.Rabbit.Host == "") {
		return App{}, fmt.Errorf("invalid config: postgres driver needs database and rabbitmq hosts")
	}
	return a, nil
}

func defaults() App {
	return App{
		Server: Server{Port: 3000},
		Store:  Store{Driver: "local", DataDir: "./data"},
		Admin:  Admin{Password: "admin123"},
		Chat:   Chat{Model: "gemini-3-flash-preview"},
	}
}

// Secrets can be supplied via environment instead of the config file.
func applyEnv(a *App) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		a.Database.Pass = v
	}
	if v := os.Getenv("RABBITMQ_PASSWORD"); v != "" {
		a.Rabbit.Pass = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		a.Admin.Password = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		a.Chat.APIKey = v
	}
}

func FindConfig() (string, error) {
	candidates := []string{"config.yaml", "deploy/config.example.yaml"}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fs.ErrNotExist
}
