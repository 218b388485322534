package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/spigell/talents/internal/auth"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Hash an admin password for the auth.admins config section",
	Run: func(_ *cobra.Command, _ []string) {
		config, err := getConfig()
		if err != nil {
			log.Fatalf("getting a config: %s", err)
		}

		passwords, err := auth.NewPasswords(config.Auth.PasswordCost, config.Auth.Pepper)
		if err != nil {
			log.Fatalf("configuring password hashing: %s", err)
		}

		prompt := promptui.Prompt{
			Label: "Password",
			Mask:  '*',
			Validate: func(s string) error {
				if len(s) < 8 {
					return errors.New("use at least 8 characters")
				}
				return nil
			},
		}
		password, err := prompt.Run()
		if err != nil {
			log.Fatalf("reading password: %s", err)
		}

		hash, err := passwords.Hash(password)
		if err != nil {
			log.Fatalf("hashing: %s", err)
		}
		fmt.Println(hash)
	},
}

func init() {
	rootCmd.AddCommand(hashPasswordCmd)
}
