package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/folio-cms/folio/auth"
)

var hashParams = auth.DefaultArgon2idParams()

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Hash an admin password",
	Long: `Hash an admin password with argon2id.

The password is read from the terminal without echo, or as a single line
from stdin if stdin is not a terminal. The printed hash can be used as
admin.password_hash or ADMIN_PASSWORD_HASH.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		password, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		hash, err := auth.HashPassword(password, hashParams)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
		return err
	},
}

func init() {
	flags := hashPasswordCmd.Flags()
	flags.Uint32Var(&hashParams.Time, "time", hashParams.Time, "argon2id iterations")
	flags.Uint32Var(&hashParams.MemoryKiB, "memory", hashParams.MemoryKiB, "argon2id memory in KiB")
	flags.Uint8Var(&hashParams.Parallelism, "parallelism", hashParams.Parallelism, "argon2id parallelism")
	flags.Uint32Var(&hashParams.KeyLen, "key-len", hashParams.KeyLen, "length of the derived key in bytes")
	flags.Uint32Var(&hashParams.SaltLen, "salt-len", hashParams.SaltLen, "length of the random salt in bytes")
}

func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return readPasswordFromTerminal(int(f.Fd()), prompt)
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "could not read password")
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("no password given")
	}
	return password, nil
}

func readPasswordFromTerminal(fd int, prompt io.Writer) (string, error) {
	_, _ = fmt.Fprint(prompt, "Password: ")
	first, err := term.ReadPassword(fd)
	_, _ = fmt.Fprintln(prompt)
	if err != nil {
		return "", errors.Wrap(err, "could not read password")
	}
	_, _ = fmt.Fprint(prompt, "Repeat password: ")
	second, err := term.ReadPassword(fd)
	_, _ = fmt.Fprintln(prompt)
	if err != nil {
		return "", errors.Wrap(err, "could not read password")
	}
	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	if len(first) == 0 {
		return "", errors.New("no password given")
	}
	return string(first), nil
}
