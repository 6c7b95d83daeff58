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
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "fastsearch",
	Short: "Instant search over a static site's precomputed document index.",
	Long: `A terminal rendition of an in-browser instant-search widget: it loads a
precomputed JSON document index, ranks it against the query as you type,
and lets you walk the results with the keyboard.

  fastsearch search --index-url https://example.com/index.json
  fastsearch feed --url https://example.com/feed.json
`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is built-in defaults)")
}
