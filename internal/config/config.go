package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL      string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"marketconnect.db"`
	SeedDemo     bool   `env:"SEED_DEMO" envDefault:"false"`

	Auth    Auth    `envPrefix:"AUTH_"`
	Admin   Admin   `envPrefix:"ADMIN_"`
	Images  Images  `envPrefix:"IMAGES_"`
	Suggest Suggest `envPrefix:"SUGGEST_"`
}

type Auth struct {
	JWTSecret string        `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}

// Admin is the seeded administrator account. The admin is a regular user
// row with role admin, not a special branch in the sign-in path.
type Admin struct {
	Email     string `env:"EMAIL" envDefault:"admin@marketconnect.com"`
	Password  string `env:"PASSWORD" envDefault:"BeninShell@2025"`
	FirstName string `env:"FIRST_NAME" envDefault:"Admin"`
	LastName  string `env:"LAST_NAME" envDefault:"MarketConnect"`
}

type Images struct {
	BaseURL string `env:"BASE_URL" envDefault:"https://picsum.photos"`
}

type Suggest struct {
	BaseURL string `env:"BASE_URL"`
	APIKey  string `env:"API_KEY"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
