package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/nyayconnect/nyayconnect-api/logging"
	"github.com/nyayconnect/nyayconnect-api/models"
)

// Config holds the project config values
type Config struct {
	DatabaseURL    string
	Port           string
	SecretKey      string
	AllowedOrigins []string
	MaxDBConns     int
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger, err := setLogger(os.Getenv("APP_ENV"))
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	maxConns, err := strconv.Atoi(os.Getenv("DB_MAX_CONNS"))
	if err != nil || maxConns <= 0 {
		// same bound as the original connection pool
		maxConns = 10
	}

	return &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Port:           os.Getenv("PORT"),
		SecretKey:      os.Getenv("SECRET_KEY"),
		AllowedOrigins: splitOrigins(os.Getenv("ALLOWED_ORIGINS")),
		MaxDBConns:     maxConns,
	}
}

// setLogger builds the zap logger for the given environment
func setLogger(env string) (*zap.Logger, error) {
	return logging.New(env)
}

func splitOrigins(origins string) []string {
	if origins == "" {
		return []string{"http://localhost:3000"}
	}
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	b, _ := json.Marshal(models.ErrorMessageResponse{Success: false, Message: fmt.Sprintf("%s, %v", message, err)})
	w.Write(b)
}
