package randx

import (
	"context"
	"encoding/binary"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/clinia/numx/errorx"
	"github.com/clinia/numx/slogx"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"go.opentelemetry.io/otel/attribute"
)

type Algorithm string

const (
	AlgorithmGlobal  = Algorithm("global")
	AlgorithmPCG     = Algorithm("pcg")
	AlgorithmChaCha8 = Algorithm("chacha8")
)

var algorithms = []string{
	string(AlgorithmGlobal),
	string(AlgorithmPCG),
	string(AlgorithmChaCha8),
}

func (a Algorithm) Validate() error {
	switch a {
	case AlgorithmGlobal, AlgorithmPCG, AlgorithmChaCha8:
		return nil
	default:
		return errorx.NewEnumOutOfRangeError(string(a), algorithms, "algorithm")
	}
}

type Format string

const (
	FormatJSON = Format("json")
	FormatYAML = Format("yaml")
)

// Config selects the generator behind a Rand.
//
// Seed and Stream are ignored by the global algorithm. Seeds above 2^53
// must be given as strings in JSON documents to keep their precision.
type Config struct {
	Algorithm Algorithm `koanf:"algorithm" json:"algorithm"`
	Seed      uint64    `koanf:"seed" json:"seed"`
	Stream    uint64    `koanf:"stream" json:"stream"`
}

// LoadConfig parses raw as a document of the given format. An empty document
// yields the global algorithm.
func LoadConfig(raw []byte, format Format) (Config, error) {
	var parser koanf.Parser
	switch format {
	case FormatJSON:
		parser = json.Parser()
	case FormatYAML:
		parser = yaml.Parser()
	default:
		return Config{}, errorx.NewEnumOutOfRangeError(string(format), []string{string(FormatJSON), string(FormatYAML)}, "format")
	}

	k := koanf.New(".")
	if len(strings.TrimSpace(string(raw))) > 0 {
		if err := k.Load(rawbytes.Provider(raw), parser); err != nil {
			e := errorx.InvalidArgumentErrorf("could not parse random source config: %v", err)
			e.OriginalError = err
			return Config{}, e
		}
	}

	cfg := Config{Algorithm: AlgorithmGlobal}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		e := errorx.InvalidArgumentErrorf("could not decode random source config: %v", err)
		e.OriginalError = err
		return Config{}, e
	}
	cfg.Algorithm = Algorithm(strings.ToLower(string(cfg.Algorithm)))
	if cfg.Algorithm == "" {
		cfg.Algorithm = AlgorithmGlobal
	}

	if err := cfg.Algorithm.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

type options struct {
	logger *slog.Logger
}

// Option is a named func that customizes NewFromConfig
type Option func(*options)

// WithLogger sets the logger NewFromConfig reports to. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// NewSource builds the Source described by cfg.
func NewSource(cfg Config) (Source, error) {
	switch cfg.Algorithm {
	case AlgorithmGlobal, "":
		return GlobalSource(), nil
	case AlgorithmPCG:
		return rand.New(rand.NewPCG(cfg.Seed, cfg.Stream)), nil
	case AlgorithmChaCha8:
		var seed [32]byte
		binary.LittleEndian.PutUint64(seed[0:8], cfg.Seed)
		binary.LittleEndian.PutUint64(seed[8:16], cfg.Stream)
		return rand.New(rand.NewChaCha8(seed)), nil
	default:
		return nil, cfg.Algorithm.Validate()
	}
}

// NewFromConfig returns a Rand backed by the Source described by cfg.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Rand, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	src, err := NewSource(cfg)
	if err != nil {
		slogx.Error(ctx, o.logger, "invalid random source config", err, attribute.String("algorithm", string(cfg.Algorithm)))
		return nil, err
	}

	slogx.Debug(ctx, o.logger, "random source ready",
		attribute.String("algorithm", string(cfg.Algorithm)),
		attribute.Bool("seeded", cfg.Algorithm == AlgorithmPCG || cfg.Algorithm == AlgorithmChaCha8),
	)

	return New(src), nil
}
