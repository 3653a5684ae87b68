package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	SiteURL     string `env:"SITE_URL" envDefault:"https://phoebedawsonfoundation.org"`
	Currency    string `env:"CURRENCY" envDefault:"aud"`

	Stripe      Stripe      `envPrefix:"STRIPE_"`
	Airtable    Airtable    `envPrefix:"AIRTABLE_"`
	Fundraising Fundraising `envPrefix:"FUNDRAISING_"`
}

type Stripe struct {
	SecretKey     string `env:"SECRET_KEY"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`
}

type Airtable struct {
	BaseApiURL       string `env:"BASE_API_URL" envDefault:"https://api.airtable.com/v0"`
	APIKey           string `env:"API_KEY"`
	BaseID           string `env:"BASE_ID"`
	OrdersTable      string `env:"TABLE_NAME" envDefault:"Orders"`
	SubscribersTable string `env:"SUBSCRIBERS_TABLE" envDefault:"Subscribers"`
}

type Fundraising struct {
	PageURL string `env:"PAGE_URL" envDefault:"https://coleclassic.com.au/fundraising/"`
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
