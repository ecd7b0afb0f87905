package command

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"runtime"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/cpucaps-go/pkg/crypto/adaptive"
)

var errSelfTest = errors.New("cipher self-test failed")

type cipherView struct {
	Cipher    adaptive.CipherType `json:"cipher" yaml:"cipher"`
	GOARCH    string              `json:"goarch" yaml:"goarch"`
	NonceSize int                 `json:"nonce_size" yaml:"nonce_size"`
	Overhead  int                 `json:"overhead" yaml:"overhead"`
	SelfTest  string              `json:"self_test" yaml:"self_test"`
}

// CipherCommand returns the cipher command.
func CipherCommand() *cli.Command {
	return &cli.Command{
		Name:  "cipher",
		Usage: "Show which AEAD the adaptive package selects",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "type",
				Usage: "Force a cipher (aes-gcm, chacha20-poly1305) instead of selecting",
			},
		},
		Action: cipherAction,
	}
}

func cipherAction(c *cli.Context) error {
	cipherType := adaptive.SelectFor(resolve(c).Effective)
	if c.IsSet("type") {
		cipherType = adaptive.CipherType(c.String("type"))
	}
	GetLogger(c).Debug("cipher selected", "cipher", cipherType, "goarch", runtime.GOARCH)

	view, err := selfTest(cipherType)
	if err != nil {
		return err
	}
	return render(c, view)
}

// selfTest seals and opens a random message with a fresh key.
func selfTest(cipherType adaptive.CipherType) (cipherView, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return cipherView{}, fmt.Errorf("generate key: %w", err)
	}

	aead, err := adaptive.NewWithType(key, cipherType)
	if err != nil {
		return cipherView{}, err
	}

	msg := []byte("cpucaps self-test")
	ad := []byte(cipherType)
	sealed, err := aead.Encrypt(msg, ad)
	if err != nil {
		return cipherView{}, fmt.Errorf("%w: %w", errSelfTest, err)
	}
	opened, err := aead.Decrypt(sealed, ad)
	if err != nil {
		return cipherView{}, fmt.Errorf("%w: %w", errSelfTest, err)
	}
	if !bytes.Equal(opened, msg) {
		return cipherView{}, errSelfTest
	}

	return cipherView{
		Cipher:    aead.Type(),
		GOARCH:    runtime.GOARCH,
		NonceSize: aead.NonceSize(),
		Overhead:  aead.Overhead(),
		SelfTest:  "ok",
	}, nil
}
