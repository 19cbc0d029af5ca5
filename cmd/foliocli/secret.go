package main

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	secretLength int
	secretAsJWK  bool
)

var genSecretCmd = &cobra.Command{
	Use:   "gen-secret",
	Short: "Generate a session signing secret",
	Long: `Generate a random session signing secret.

By default the secret is printed base64url encoded and can be used as
admin.session.secret or SECRET_KEY. With --jwk a symmetric JWK is printed
instead, suitable for admin.session.key_file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := generateSecret(secretLength, secretAsJWK)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	genSecretCmd.Flags().IntVarP(&secretLength, "length", "n", 32, "number of random bytes")
	genSecretCmd.Flags().BoolVar(&secretAsJWK, "jwk", false, "print the secret as a JWK")
}

func generateSecret(length int, asJWK bool) (string, error) {
	if length < 32 {
		return "", errors.Errorf("secret length must be at least 32 bytes, got %d", length)
	}
	raw := make([]byte, length)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "could not generate secret")
	}
	if !asJWK {
		return base64.RawURLEncoding.EncodeToString(raw), nil
	}
	key, err := jwk.Import(raw)
	if err != nil {
		return "", errors.Wrap(err, "could not create jwk")
	}
	data, err := json.Marshal(key)
	if err != nil {
		return "", errors.Wrap(err, "could not encode jwk")
	}
	return string(data), nil
}
