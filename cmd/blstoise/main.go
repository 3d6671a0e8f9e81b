// Command blstoise drives key generation, signing and verification over
// BLS12-381 from the shell.
package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"math/big"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/kevincharm/blstoise/pkg/bls12381"
	"github.com/kevincharm/blstoise/pkg/log"
)

var logger = log.New(slog.LevelInfo)

func main() {
	app := &cli.App{
		Name:  "blstoise",
		Usage: "BLS12-381 key generation, signing and verification",
		Commands: []*cli.Command{
			genKeyCommand(),
			signCommand(),
			verifyCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func genKeyCommand() *cli.Command {
	return &cli.Command{
		Name:  "genkey",
		Usage: "generate a random BLS12-381 secret key and its public key",
		Action: func(c *cli.Context) error {
			secret, err := bls12381.RandomScalar()
			if err != nil {
				return err
			}
			pub := bls12381.PubkeyFromSecret(secret)
			pubBytes := bls12381.SerializeG2(pub)
			fmt.Printf("secret: %s\n", secret.Text(16))
			fmt.Printf("pubkey: %s\n", hex.EncodeToString(pubBytes[:]))
			return nil
		},
	}
}

func signCommand() *cli.Command {
	return &cli.Command{
		Name:      "sign",
		Usage:     "sign a message with a hex-encoded secret key",
		ArgsUsage: "<secret-hex> <message>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 2 {
				return cli.Exit("expected <secret-hex> <message>", 1)
			}
			secretHex := c.Args().Get(0)
			msg := []byte(c.Args().Get(1))

			secret, ok := new(big.Int).SetString(secretHex, 16)
			if !ok {
				return cli.Exit("invalid secret hex", 1)
			}
			sig, err := bls12381.Sign(secret, msg)
			if err != nil {
				return err
			}
			sigBytes := bls12381.SerializeG1(sig)
			fmt.Println(hex.EncodeToString(sigBytes[:]))
			return nil
		},
	}
}

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "verify a signature against a public key and message",
		ArgsUsage: "<pubkey-hex> <message> <sig-hex>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 3 {
				return cli.Exit("expected <pubkey-hex> <message> <sig-hex>", 1)
			}
			pubHex := c.Args().Get(0)
			msg := []byte(c.Args().Get(1))
			sigHex := c.Args().Get(2)

			pubRaw, err := hex.DecodeString(pubHex)
			if err != nil || len(pubRaw) != bls12381.G2CompressedSize {
				return cli.Exit("invalid pubkey", 1)
			}
			sigRaw, err := hex.DecodeString(sigHex)
			if err != nil || len(sigRaw) != bls12381.G1CompressedSize {
				return cli.Exit("invalid signature", 1)
			}

			var pubArr [bls12381.G2CompressedSize]byte
			var sigArr [bls12381.G1CompressedSize]byte
			copy(pubArr[:], pubRaw)
			copy(sigArr[:], sigRaw)

			pub, err := bls12381.DeserializeG2(pubArr)
			if err != nil {
				return cli.Exit("malformed pubkey: "+err.Error(), 1)
			}
			sig, err := bls12381.DeserializeG1(sigArr)
			if err != nil {
				return cli.Exit("malformed signature: "+err.Error(), 1)
			}

			ok, err := bls12381.Verify(pub, msg, sig)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("invalid")
				os.Exit(1)
			}
			fmt.Println("valid")
			return nil
		},
	}
}
