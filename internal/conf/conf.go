package conf

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Bootstrap is the root of configs/config.yaml.
type Bootstrap struct {
	Server     *Server     `json:"server"`
	Data       *Data       `json:"data"`
	Auth       *Auth       `json:"auth"`
	Completion *Completion `json:"completion"`
	Media      *Media      `json:"media"`
	Log        *Log        `json:"log"`
}

type Server struct {
	Http *Server_HTTP `json:"http"`
}

type Server_HTTP struct {
	Network string    `json:"network"`
	Addr    string    `json:"addr"`
	Timeout *Duration `json:"timeout"`
}

type Data struct {
	Database *Data_Database `json:"database"`
	Redis    *Data_Redis    `json:"redis"`
}

type Data_Database struct {
	Source string `json:"source"`
}

type Data_Redis struct {
	Addr         string    `json:"addr"`
	Password     string    `json:"password"`
	Db           int       `json:"db"`
	ReadTimeout  *Duration `json:"read_timeout"`
	WriteTimeout *Duration `json:"write_timeout"`
}

type Auth struct {
	JwtSecret string    `json:"jwt_secret"`
	Issuer    string    `json:"issuer"`
	TokenTtl  *Duration `json:"token_ttl"`
}

// Completion configures the text-completion provider used for scene descriptions.
type Completion struct {
	Url        string    `json:"url"`
	ApiKey     string    `json:"api_key"`
	Model      string    `json:"model"`
	MaxTokens  int32     `json:"max_tokens"`
	Timeout    *Duration `json:"timeout"`
	MaxRetries int32     `json:"max_retries"`
	// Requests allowed per client within QuotaWindow.
	QuotaLimit  int32     `json:"quota_limit"`
	QuotaWindow *Duration `json:"quota_window"`
}

type Media struct {
	Root         string `json:"root"`
	MaxImageSize int64  `json:"max_image_size"`
}

type Log struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// Duration is a time.Duration read from strings such as "1.5s".
type Duration struct {
	time.Duration
}

// NewDuration wraps d.
func NewDuration(d time.Duration) *Duration {
	return &Duration{Duration: d}
}

// AsDuration returns the wrapped value, zero for a nil receiver.
func (d *Duration) AsDuration() time.Duration {
	if d == nil {
		return 0
	}
	return d.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
	default:
		return fmt.Errorf("invalid duration type %T", v)
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
