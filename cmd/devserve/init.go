package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config.yaml interactively",
	Long: `Create a config.yaml in the current directory by answering a few
prompts. The generated file can then be edited by hand or overridden
with DEVSERVE_* environment variables and CLI flags.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// yamlConfig mirrors the config file layout for the generated config.yaml.
type yamlConfig struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`
	Site struct {
		Root     string `yaml:"root"`
		Fallback string `yaml:"fallback"`
	} `yaml:"site"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

func runInit(_ *cobra.Command, _ []string) error {
	const configPath = "config.yaml"

	if _, err := os.Stat(configPath); err == nil {
		prompt := promptui.Prompt{
			Label:     "config.yaml already exists. Overwrite it",
			IsConfirm: true,
		}
		if _, promptErr := prompt.Run(); promptErr != nil {
			fmt.Println("Cancelled.")
			return nil //nolint:nilerr // User cancelled, not an error
		}
	}

	rootPrompt := promptui.Prompt{
		Label:   "Content root directory",
		Default: ".",
		Validate: func(input string) error {
			info, statErr := os.Stat(input)
			if os.IsNotExist(statErr) {
				return fmt.Errorf("directory does not exist: %s", input)
			}
			if statErr != nil {
				return statErr
			}
			if !info.IsDir() {
				return fmt.Errorf("not a directory: %s", input)
			}
			return nil
		},
	}
	rootDir, err := rootPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	hostPrompt := promptui.Prompt{
		Label:   "Bind host",
		Default: "0.0.0.0",
		Validate: func(input string) error {
			if input == "" {
				return errors.New("host is required")
			}
			return nil
		},
	}
	host, err := hostPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	portPrompt := promptui.Prompt{
		Label:   "Port",
		Default: "8080",
		Validate: func(input string) error {
			port, convErr := strconv.Atoi(input)
			if convErr != nil {
				return errors.New("port must be a number")
			}
			if port < 1 || port > 65535 {
				return errors.New("port must be between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}
	port, _ := strconv.Atoi(portStr)

	fallbackPrompt := promptui.Prompt{
		Label:   "Fallback document",
		Default: "index.html",
		Validate: func(input string) error {
			if input == "" {
				return errors.New("fallback document name is required")
			}
			return nil
		},
	}
	fallback, err := fallbackPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	var cfg yamlConfig
	cfg.Server.Host = host
	cfg.Server.Port = port
	cfg.Site.Root = rootDir
	cfg.Site.Fallback = fallback
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", configPath, err)
	}

	fmt.Printf("Wrote %s. Start the server with 'devserve serve'.\n", configPath)
	return nil
}

// handlePromptError converts a prompt cancellation into a clean exit.
func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) {
		fmt.Println("Cancelled.")
		return nil
	}
	return fmt.Errorf("prompt: %w", err)
}
