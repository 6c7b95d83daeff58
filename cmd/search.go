/*
Copyright © 2025 fastsearch contributors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rgechols/fastsearch/internal/config"
	"github.com/rgechols/fastsearch/internal/index"
	"github.com/rgechols/fastsearch/internal/tui/fastsearch"
)

var indexURL string

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Open the interactive search widget.",
	Long: `Opens the search widget in the terminal. The document index is fetched
lazily on first activation and ranked against the query as you type.
Selecting a result with Enter prints its permalink on exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if indexURL != "" {
			cfg.Search.IndexURL = indexURL
		}

		store := index.NewStore(nil)
		program := tea.NewProgram(
			fastsearch.NewModel(cfg, store),
			tea.WithAltScreen(),
		)

		final, err := program.Run()
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}

		if loadErr := store.Err(); loadErr != nil {
			log.Printf("search index load failed: %v", loadErr)
		}

		model, ok := final.(fastsearch.Model)
		if !ok {
			return nil
		}
		if dest := model.Destination(); dest != "" {
			fmt.Println(dest)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().
		StringVar(&indexURL, "index-url", "", "override the configured search index endpoint")
	rootCmd.AddCommand(searchCmd)
}
