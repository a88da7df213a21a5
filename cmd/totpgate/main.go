// Command totpgate generates (or rotates) the shared community secret,
// persists it to the configured record path and prints everything the
// operator needs for enrollment: the base32 secret, the otpauth URI and a QR
// code data URI. Running it against an existing record is a rotation: codes
// from the old secret stop validating the moment the new record lands.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically

	"github.com/totpgate/totpgate/pkg/logger"
	"github.com/totpgate/totpgate/pkg/otp"
	"github.com/totpgate/totpgate/pkg/qrcode"
	"github.com/totpgate/totpgate/pkg/secret"
)

type config struct {
	SecretPath   string `env:"TOTPGATE_SECRET_PATH" envDefault:"/usr/local/etc/captiveportal_totp.conf"`
	SecretLength int    `env:"TOTPGATE_SECRET_LENGTH" envDefault:"20"`
	Issuer       string `env:"TOTPGATE_ISSUER" envDefault:"OPNsense-CaptivePortal"`
	AccountName  string `env:"TOTPGATE_ACCOUNT" envDefault:"guest"`
	QRSize       int    `env:"TOTPGATE_QR_SIZE" envDefault:"256"`
	PrintQR      bool   `env:"TOTPGATE_PRINT_QR" envDefault:"true"`
}

func main() {
	log := logger.New(
		logger.WithTextFormatter(),
		logger.WithAttr(slog.String("service", "totpgate")),
	)

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Error("failed to parse configuration", slog.Any("error", err))
		os.Exit(1)
	}

	raw, err := secret.Generate(cfg.SecretLength)
	if err != nil {
		log.Error("failed to generate secret", slog.Any("error", err))
		os.Exit(1)
	}

	store := secret.NewFileStore(cfg.SecretPath)
	if err := store.Persist(raw); err != nil {
		log.Error("failed to persist secret record",
			slog.String("path", cfg.SecretPath), slog.Any("error", err))
		os.Exit(1)
	}
	log.Info("secret record written", slog.String("path", cfg.SecretPath))

	uri, err := secret.EnrollmentURI(raw, secret.URIParams{
		AccountName: cfg.AccountName,
		Issuer:      cfg.Issuer,
	})
	if err != nil {
		log.Error("failed to format enrollment URI", slog.Any("error", err))
		os.Exit(1)
	}

	// The only place the secret leaves the process in text form, on purpose:
	// this command exists to hand it to the operator.
	fmt.Printf("TOTP secret (base32): %s\n\n", otp.EncodeSecret(raw))
	fmt.Printf("otpauth URI (add to authenticator app):\n%s\n", uri)

	if cfg.PrintQR {
		dataURI, err := qrcode.EnrollmentDataURI(uri, cfg.QRSize)
		if err != nil {
			log.Error("failed to render enrollment QR", slog.Any("error", err))
			os.Exit(1)
		}
		fmt.Printf("\nQR code (paste into an <img src=...> tag):\n%s\n", dataURI)
	}
}
