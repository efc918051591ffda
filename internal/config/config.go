package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// NumberParam - числовой параметр туториала: дефолт и допустимый диапазон
type NumberParam struct {
	Default float64
	Min     float64
	Max     float64
	Step    float64
}

// EnumParam - перечислимый параметр туториала
type EnumParam struct {
	Default string
	Values  []string
}

// TutorialConfig - декларация параметров одного туториала из config.yaml
type TutorialConfig interface {
	Name() string
	NumberParams() map[string]NumberParam
	EnumParams() map[string]EnumParam
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
