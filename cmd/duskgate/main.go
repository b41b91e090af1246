// Command duskgate is a small demonstration of the codec: it seals a
// message under a secret and immediately opens it back up, logging the
// wire size and a base58 rendering of the ciphertext along the way.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/mr-tron/base58"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/duskcodec/duskgate/codec"
)

const envPrefix = "DUSKGATE_"

func main() {
	flag.String("secret", "my_secret_should_be_1<<30_in_length", "shared secret used to seal and open messages")
	flag.String("message", "tomskicus", "plaintext message to round-trip through the codec")
	flag.Parse()

	k := koanf.New(".")
	if err := k.Load(posflag.Provider(flag.CommandLine, ".", k), nil); err != nil {
		fmt.Fprintln(os.Stderr, "loading flags:", err)
		os.Exit(1)
	}

	// DUSKGATE_SECRET / DUSKGATE_MESSAGE override flags when set, matching
	// the layered config precedence the rest of this module's ambient
	// stack assumes: env wins over flags, flags win over defaults.
	if err := k.Load(env.Provider(envPrefix, ".", envKeyMap), nil); err != nil {
		fmt.Fprintln(os.Stderr, "loading env:", err)
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "building logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	secret := k.String("secret")
	message := k.String("message")

	enc := codec.SpawnEncoder([]byte(secret))

	sealed, err := enc.Encode(message)
	if err != nil {
		logger.Fatal("encode failed", zap.Error(err))
	}

	logger.Info("sealed message",
		zap.Int("plaintext_len", len(message)),
		zap.Int("sealed_len", len(sealed)),
		zap.String("sealed_base58", base58.Encode([]byte(sealed))),
	)

	opened, err := enc.Decode(sealed)
	if err != nil {
		logger.Fatal("decode failed", zap.Error(err))
	}

	logger.Info("opened message", zap.String("plaintext", opened), zap.Int("len", len(opened)))

	fmt.Printf("%s %d\n", opened, len(opened))
}

func envKeyMap(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}
