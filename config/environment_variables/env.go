package environment_variables

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type EnvironmentVariable struct {
	ENABLED  bool
	APP_PORT int

	API_ENDPOINT    string
	DOWNLOAD_BUCKET string

	SSM_JWT_PARAM   string
	SSM_EMAIL_PARAM string

	SUPPORT_EMAIL string
	SMTP_HOST     string
	SMTP_PORT     int
	SMTP_USERNAME string

	AWS_REGION    string
	S3_ENDPOINT   string
	S3_ACCESS_KEY string
	S3_SECRET_KEY string
	S3_USE_SSL    bool

	CACHE_TYPE     string
	CACHE_URL      string
	CACHE_PASSWORD string
	CACHE_DB       string

	ALLOWED_WIDTHS []int
	DEFAULT_WIDTH  int
}

// LoadFromEnv fills the struct from process environment variables keyed by
// field name. Fields keep their current value when the variable is unset, so
// the defaults below survive a reload.
func (ev *EnvironmentVariable) LoadFromEnv() {
	// .env is only present in local development
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}

	v := reflect.ValueOf(ev).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		envKey := field.Name
		envValue := os.Getenv(envKey)
		if envValue == "" {
			continue
		}
		switch v.Field(i).Kind() {
		case reflect.String:
			v.Field(i).SetString(envValue)
		case reflect.Bool:
			if b, err := strconv.ParseBool(envValue); err == nil {
				v.Field(i).SetBool(b)
			}
		case reflect.Int:
			if n, err := strconv.Atoi(envValue); err == nil {
				v.Field(i).SetInt(int64(n))
			}
		case reflect.Slice:
			if field.Type.Elem().Kind() == reflect.Int {
				widths := make([]int, 0)
				for _, part := range strings.Split(envValue, ",") {
					n, err := strconv.Atoi(strings.TrimSpace(part))
					if err != nil {
						widths = nil
						break
					}
					widths = append(widths, n)
				}
				if widths != nil {
					v.Field(i).Set(reflect.ValueOf(widths))
				}
			}
		default:
			fmt.Printf("Unsupported SYSENV kind: %s", envKey)
		}
	}
}

// Singleton
var EnvironmentVariables = EnvironmentVariable{
	ENABLED:    true,
	APP_PORT:   8080,
	SMTP_PORT:  587,
	CACHE_TYPE: "noop",
	// Width 0 means the photo is served unresized.
	ALLOWED_WIDTHS: []int{0, 100, 300, 500, 750, 1000, 1500, 2500, 3360},
	DEFAULT_WIDTH:  1800,
}
