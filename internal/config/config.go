package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type Config struct {
	Mode     Mode
	HTTPAddr string

	DBDriver string
	DBDSN    string

	AuthSecret    string
	AdminUser     string
	AdminPassHash string // bcrypt

	CORSOriginsOnline  []string
	CORSOriginsOffline []string

	// Recognition engine
	TesseractLang     string
	OCRTimeoutSeconds int

	// Essay oracle (Hugging Face inference API). AI-assisted scoring is
	// attempted only when enabled AND a credential is configured.
	EnableAIScoring bool
	HFAPIKey        string
	HFModelURL      string

	// Spreadsheet export
	SheetsSpreadsheetID   string
	SheetsRange           string
	SheetsCredentialsFile string

	// Optional archive of uploaded answer-sheet images
	ArchiveUploads bool
	ArchiveBase    string
}

// AIConfigured reports whether the oracle path may be attempted at all.
func (c Config) AIConfigured() bool {
	return c.EnableAIScoring && c.HFAPIKey != ""
}

// FromEnv builds the config from environment variables, then overlays the
// YAML file named by CONFIG_FILE if one is set.
func FromEnv() (Config, error) {
	mode := Mode(os.Getenv("MODE"))
	if mode == "" {
		mode = ModeOffline
	}
	cfg := Config{
		Mode:               mode,
		HTTPAddr:           envOr("HTTP_ADDR", ":8080"),
		DBDriver:           envOr("DB_DRIVER", "sqlite"),
		DBDSN:              envOr("DB_DSN", ""),
		AuthSecret:         envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		AdminUser:          envOr("ADMIN_USER", "admin"),
		AdminPassHash:      envOr("ADMIN_PASS_HASH", "$2y$12$pyZAiWaTfVtM7UElIRStvOC3gNbnp70nmQU4eYopLGBfCJr1DOvji"),
		CORSOriginsOnline:  csvOr("CORS_ORIGINS_ONLINE", "https://koreksi.example.id"),
		CORSOriginsOffline: csvOr("CORS_ORIGINS_OFFLINE", "http://localhost:3000"),

		TesseractLang:     envOr("TESSERACT_LANG", "eng"),
		OCRTimeoutSeconds: intOr("OCR_TIMEOUT_SEC", 20),

		EnableAIScoring: envBool("ENABLE_AI_SCORING", false),
		HFAPIKey:        os.Getenv("HUGGINGFACE_API_KEY"),
		HFModelURL:      os.Getenv("HUGGINGFACE_MODEL_URL"),

		SheetsSpreadsheetID:   os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID"),
		SheetsRange:           envOr("GOOGLE_SHEETS_SHEET_NAME", "Sheet1!A:Z"),
		SheetsCredentialsFile: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_FILE"),

		ArchiveUploads: envBool("ARCHIVE_UPLOADS", false),
		ArchiveBase:    envOr("ARCHIVE_BASE_PATH", "./data/uploads"),
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// fileConfig mirrors the YAML layout; only set fields override env values.
type fileConfig struct {
	Mode     string `yaml:"mode"`
	HTTPAddr string `yaml:"http_addr"`
	DB       struct {
		Driver string `yaml:"driver"`
		DSN    string `yaml:"dsn"`
	} `yaml:"db"`
	Auth struct {
		Secret        string `yaml:"secret"`
		AdminUser     string `yaml:"admin_user"`
		AdminPassHash string `yaml:"admin_pass_hash"`
	} `yaml:"auth"`
	OCR struct {
		Lang       string `yaml:"lang"`
		TimeoutSec int    `yaml:"timeout_sec"`
	} `yaml:"ocr"`
	AI struct {
		Enabled  *bool  `yaml:"enabled"`
		APIKey   string `yaml:"api_key"`
		ModelURL string `yaml:"model_url"`
	} `yaml:"ai"`
	Sheets struct {
		SpreadsheetID   string `yaml:"spreadsheet_id"`
		Range           string `yaml:"range"`
		CredentialsFile string `yaml:"credentials_file"`
	} `yaml:"sheets"`
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}
	setStr(&c.HTTPAddr, fc.HTTPAddr)
	if fc.Mode != "" {
		c.Mode = Mode(fc.Mode)
	}
	setStr(&c.DBDriver, fc.DB.Driver)
	setStr(&c.DBDSN, fc.DB.DSN)
	setStr(&c.AuthSecret, fc.Auth.Secret)
	setStr(&c.AdminUser, fc.Auth.AdminUser)
	setStr(&c.AdminPassHash, fc.Auth.AdminPassHash)
	setStr(&c.TesseractLang, fc.OCR.Lang)
	if fc.OCR.TimeoutSec > 0 {
		c.OCRTimeoutSeconds = fc.OCR.TimeoutSec
	}
	if fc.AI.Enabled != nil {
		c.EnableAIScoring = *fc.AI.Enabled
	}
	setStr(&c.HFAPIKey, fc.AI.APIKey)
	setStr(&c.HFModelURL, fc.AI.ModelURL)
	setStr(&c.SheetsSpreadsheetID, fc.Sheets.SpreadsheetID)
	setStr(&c.SheetsRange, fc.Sheets.Range)
	setStr(&c.SheetsCredentialsFile, fc.Sheets.CredentialsFile)
	return nil
}

func setStr(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func intOr(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n := 0
	for _, r := range v {
		if r < '0' || r > '9' {
			return def
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
