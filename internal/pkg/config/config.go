package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
	_ "time/tzdata" // property zone must resolve in minimal images

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments and security settings
// - default: Values common across all environments (timezone, tariff, timeouts)
// - empty optional endpoints (REDIS_ADDR, KAFKA_BROKERS, EMAILJS_*) disable the integration
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	DB        DBConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Cookie    CookieConfig
	Log       LogConfig
	JWT       JWTConfig
	Admin     AdminConfig
	Property  PropertyConfig
	Mail      MailConfig
	Kafka     KafkaConfig
	Payment   PaymentConfig
	Reminder  ReminderConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	StoreBackendFile     = "file"
	StoreBackendPostgres = "postgres"

	OccupancyConfirmedPending = "confirmed_pending"
)

type StoreConfig struct {
	Backend  string `envconfig:"STORE_BACKEND" default:"file"`
	FileDir  string `envconfig:"STORE_FILE_DIR" default:"data"`
	FileName string `envconfig:"STORE_FILE_PREFIX" default:"bluehaven"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"bluehaven"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Africa/Johannesburg"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"REDIS_AVAILABILITY_TTL" default:"5m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-RateLimit-Limit,X-RateLimit-Remaining,X-RateLimit-Reset"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN"`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"SAST"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"7200"` // 2*60*60
}

type JWTConfig struct {
	Secret        string        `envconfig:"JWT_SECRET" required:"true"`
	AdminDuration time.Duration `envconfig:"JWT_ADMIN_DURATION" default:"24h"`
	GuestDuration time.Duration `envconfig:"JWT_GUEST_DURATION" default:"168h"`
}

type AdminConfig struct {
	Emails       []string `envconfig:"ADMIN_EMAILS" default:"owner@bluehaven.co.za,manager@bluehaven.co.za"`
	SuperEmails  []string `envconfig:"ADMIN_SUPER_EMAILS" default:"admin@bluehaven.co.za"`
	PasswordHash string   `envconfig:"ADMIN_PASSWORD_HASH"`
}

type PropertyConfig struct {
	Name              string  `envconfig:"PROPERTY_NAME" default:"Blue Haven on 13th Emperor"`
	Capacity          int     `envconfig:"PROPERTY_CAPACITY" default:"6"`
	MaxNights         int     `envconfig:"PROPERTY_MAX_NIGHTS" default:"90"`
	TimeZone          string  `envconfig:"PROPERTY_TIMEZONE" default:"Africa/Johannesburg"`
	NightlyRateCents  int64   `envconfig:"PROPERTY_NIGHTLY_RATE_CENTS" default:"50000"`
	CleaningFeeCents  int64   `envconfig:"PROPERTY_CLEANING_FEE_CENTS" default:"15000"`
	DiscountThreshold int     `envconfig:"PROPERTY_DISCOUNT_THRESHOLD_NIGHTS" default:"7"`
	DiscountPercent   float64 `envconfig:"PROPERTY_DISCOUNT_PERCENT" default:"10"`
	OccupancyPolicy   string  `envconfig:"PROPERTY_OCCUPANCY_POLICY" default:"confirmed_pending"`
	OwnerEmail        string  `envconfig:"PROPERTY_OWNER_EMAIL" default:"owner@bluehaven.co.za"`
	ContactPhone      string  `envconfig:"PROPERTY_CONTACT_PHONE" default:"+27 11 123 4567"`
	BankName          string  `envconfig:"PROPERTY_BANK_NAME" default:"Standard Bank"`
	BankAccount       string  `envconfig:"PROPERTY_BANK_ACCOUNT" default:"1234567890"`
	BankBranchCode    string  `envconfig:"PROPERTY_BANK_BRANCH_CODE" default:"051001"`
}

// Location falls back to UTC when the zone database lacks the configured name.
func (p PropertyConfig) Location() *time.Location {
	loc, err := time.LoadLocation(p.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type MailConfig struct {
	Endpoint                 string        `envconfig:"EMAILJS_ENDPOINT" default:"https://api.emailjs.com/api/v1.0/email/send"`
	ServiceID                string        `envconfig:"EMAILJS_SERVICE_ID"`
	PublicKey                string        `envconfig:"EMAILJS_PUBLIC_KEY"`
	PrivateKey               string        `envconfig:"EMAILJS_PRIVATE_KEY"`
	ConfirmationTemplate     string        `envconfig:"EMAILJS_TEMPLATE_CONFIRMATION" default:"booking_confirmation"`
	OwnerTemplate            string        `envconfig:"EMAILJS_TEMPLATE_OWNER" default:"owner_notification"`
	CheckInReminderTemplate  string        `envconfig:"EMAILJS_TEMPLATE_CHECKIN_REMINDER" default:"checkin_reminder"`
	CheckOutReminderTemplate string        `envconfig:"EMAILJS_TEMPLATE_CHECKOUT_REMINDER" default:"checkout_reminder"`
	Timeout                  time.Duration `envconfig:"EMAILJS_TIMEOUT" default:"10s"`
}

func (m MailConfig) Enabled() bool {
	return m.ServiceID != "" && m.PublicKey != ""
}

type KafkaConfig struct {
	Brokers  []string `envconfig:"KAFKA_BROKERS"`
	Topic    string   `envconfig:"KAFKA_BOOKING_TOPIC" default:"bluehaven.bookings"`
	ClientID string   `envconfig:"KAFKA_CLIENT_ID" default:"bluehaven-api"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type PaymentConfig struct {
	SimulateLatency   bool   `envconfig:"PAYMENT_SIMULATE_LATENCY" default:"true"`
	DeclineAboveCents int64  `envconfig:"PAYMENT_DECLINE_ABOVE_CENTS" default:"0"`
	PayFastURL        string `envconfig:"PAYMENT_PAYFAST_URL" default:"https://payfast.co.za/eng/process"`
}

type ReminderConfig struct {
	Enabled    bool   `envconfig:"REMINDER_ENABLED" default:"true"`
	Schedule   string `envconfig:"REMINDER_SCHEDULE" default:"0 * * * *"`
	RunOnStart bool   `envconfig:"REMINDER_RUN_ON_START" default:"true"`
}

type RateLimitConfig struct {
	Enabled         bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Window          time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	BookingRequests int           `envconfig:"RATE_LIMIT_BOOKING_REQUESTS" default:"10"`
	AuthRequests    int           `envconfig:"RATE_LIMIT_AUTH_REQUESTS" default:"20"`
	DefaultRequests int           `envconfig:"RATE_LIMIT_DEFAULT_REQUESTS" default:"120"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, err
	}
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadDotEnv fills unset variables from an optional .env file.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func (c Config) validate() error {
	switch c.Store.Backend {
	case StoreBackendFile:
	case StoreBackendPostgres:
		if c.DB.User == "" || c.DB.Password == "" {
			return errors.New("DB_USER and DB_PASSWORD are required when STORE_BACKEND=postgres")
		}
		// reservations_no_overlap excludes pending and confirmed stays; a looser
		// calendar would advertise nights the table then refuses.
		if c.Property.OccupancyPolicy != OccupancyConfirmedPending {
			return fmt.Errorf("PROPERTY_OCCUPANCY_POLICY=%q is not supported with STORE_BACKEND=postgres", c.Property.OccupancyPolicy)
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.Store.Backend)
	}
	if c.Property.MaxNights <= 0 {
		return errors.New("PROPERTY_MAX_NIGHTS must be positive")
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Backend:  StoreBackendFile,
			FileDir:  os.TempDir(),
			FileName: "bluehaven_test",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Africa/Johannesburg",
			MaxConns: 4,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "SAST",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 7200,
		},
		JWT: JWTConfig{
			Secret:        "test-secret",
			AdminDuration: 24 * time.Hour,
			GuestDuration: 7 * 24 * time.Hour,
		},
		Admin: AdminConfig{
			Emails:      []string{"owner@bluehaven.co.za"},
			SuperEmails: []string{"admin@bluehaven.co.za"},
		},
		Property: PropertyConfig{
			Name:              "Blue Haven on 13th Emperor",
			Capacity:          6,
			MaxNights:         90,
			TimeZone:          "Africa/Johannesburg",
			NightlyRateCents:  50000,
			CleaningFeeCents:  15000,
			DiscountThreshold: 7,
			DiscountPercent:   10,
			OccupancyPolicy:   "confirmed_pending",
			OwnerEmail:        "owner@bluehaven.co.za",
			ContactPhone:      "+27 11 123 4567",
		},
		Reminder: ReminderConfig{
			Enabled: false,
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
		},
	}
}
