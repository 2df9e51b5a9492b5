// Package config carrega a configuração da aplicação a partir de variáveis
// de ambiente, opcionalmente definidas em um arquivo .env.
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config é a configuração raiz da aplicação
type Config struct {
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"db" validate:"required"`
	Log      LogConfig      `koanf:"log" validate:"required"`
	JWT      JWTConfig      `koanf:"jwt"`

	// DatabaseURL tem precedência sobre as variáveis DB_* individuais
	DatabaseURL string `koanf:"database_url"`
}

// ServerConfig contém as configurações do servidor HTTP
type ServerConfig struct {
	Port        string `koanf:"port" validate:"required"`
	BasePath    string `koanf:"base_path" validate:"required"`
	CORSOrigins string `koanf:"cors_origins"`
}

// DatabaseConfig contém as configurações para conexão com o PostgreSQL
type DatabaseConfig struct {
	Host           string `koanf:"host" validate:"required"`
	Port           int    `koanf:"port" validate:"required,min=1,max=65535"`
	User           string `koanf:"user" validate:"required"`
	Password       string `koanf:"password"`
	Name           string `koanf:"name" validate:"required"`
	SSLMode        string `koanf:"ssl_mode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	MaxConnections int32  `koanf:"max_connections" validate:"min=1"`
	MinConnections int32  `koanf:"min_connections" validate:"min=0"`
	MaxLifetime    int    `koanf:"max_lifetime" validate:"min=1"` // em segundos
}

// LogConfig contém as configurações de log
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// JWTConfig contém as configurações de autenticação. Sem chave, a
// autenticação fica desabilitada.
type JWTConfig struct {
	SecretKey string `koanf:"secret_key"`
}

// Default retorna a configuração com os valores padrão
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:     "8080",
			BasePath: "/api/v1",
		},
		Database: DatabaseConfig{
			Host:           "localhost",
			Port:           5432,
			User:           "postgres",
			Password:       "postgres",
			Name:           "erp_cooperativas",
			SSLMode:        "disable",
			MaxConnections: 10,
			MinConnections: 2,
			MaxLifetime:    300,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load carrega o arquivo .env (se existir) e as variáveis de ambiente
func Load() (*Config, error) {
	// O .env é opcional
	_ = godotenv.Load()

	return FromEnv()
}

// sections são os prefixos de variáveis lidos pela aplicação
var sections = []string{"server_", "db_", "log_", "jwt_"}

// FromEnv lê a configuração apenas das variáveis de ambiente do processo.
// DB_SSL_MODE vira db.ssl_mode: só o primeiro "_" separa a seção.
func FromEnv() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider("", ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar variáveis de ambiente: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("erro ao interpretar configuração: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuração inválida: %w", err)
	}

	return cfg, nil
}

// envKey converte o nome da variável na chave do koanf. Variáveis fora das
// seções conhecidas são ignoradas.
func envKey(s string) string {
	key := strings.ToLower(s)
	if key == "database_url" {
		return key
	}

	for _, section := range sections {
		if strings.HasPrefix(key, section) {
			return strings.Replace(key, "_", ".", 1)
		}
	}

	return ""
}

// ConnectionString retorna a string de conexão para o PostgreSQL
func (c *Config) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port)),
		Path:     "/" + c.Database.Name,
		RawQuery: url.Values{"sslmode": {c.Database.SSLMode}}.Encode(),
	}
	return dsn.String()
}

// AllowedOrigins retorna a lista de origens permitidas
func (c *ServerConfig) AllowedOrigins() []string {
	if strings.TrimSpace(c.CORSOrigins) == "" {
		return nil
	}

	origins := make([]string, 0)
	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
