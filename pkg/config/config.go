package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del cliente POS (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	Transport TransportConfig
	Session   SessionConfig
	Ticket    TicketConfig
	JWT       JWTConfig
	HTTP      HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// TransportConfig selecciona la estrategia de transporte hacia el backend.
// La selección ocurre una sola vez al arranque, no por llamada.
type TransportConfig struct {
	Mode      string        // "bridge", "http" o "mock"
	APIURL    string        // endpoint del backend para modo http
	MockDelay time.Duration // latencia simulada del modo mock
}

// SessionConfig ubicación del archivo de sesión durable.
type SessionConfig struct {
	FilePath string // vacío = <config-dir-usuario>/pasteleria-pos/session.json
}

// TicketConfig salida de tickets imprimibles.
type TicketConfig struct {
	SpoolDir    string
	SettleDelay time.Duration // espera antes de disparar la impresión
}

// JWTConfig configuración de JWT del backend de demostración.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor de desarrollo (cmd/mockserver).
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, TRANSPORT_MODE, API_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "pasteleria-pos"),
		},
		Transport: TransportConfig{
			Mode:      getString(v, "TRANSPORT_MODE", "mock"),
			APIURL:    getString(v, "API_URL", ""),
			MockDelay: time.Duration(getInt(v, "MOCK_DELAY_MS", 500)) * time.Millisecond,
		},
		Session: SessionConfig{
			FilePath: getString(v, "SESSION_FILE", ""),
		},
		Ticket: TicketConfig{
			SpoolDir:    getString(v, "TICKET_DIR", "tickets"),
			SettleDelay: time.Duration(getInt(v, "TICKET_SETTLE_MS", 500)) * time.Millisecond,
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", "demo-secret"),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "pasteleria-pos"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
	}

	if cfg.Transport.Mode == "http" && cfg.Transport.APIURL == "" {
		return nil, fmt.Errorf("config: TRANSPORT_MODE=http requiere API_URL")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		return v.GetInt(key)
	}
	return def
}
