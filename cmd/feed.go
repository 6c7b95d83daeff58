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
	"time"

	"github.com/spf13/cobra"

	"github.com/rgechols/fastsearch/internal/config"
	"github.com/rgechols/fastsearch/internal/feed"
)

var (
	feedURL    string
	feedMax    int
	feedFormat string
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Render the latest entries of a JSON feed.",
	Long: `Fetches a JSON feed and renders its newest entries with relative
timestamps, either styled for the terminal or as the HTML fragment the
site's feed container expects.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		url := cfg.Feed.URL
		if feedURL != "" {
			url = feedURL
		}
		if url == "" {
			return fmt.Errorf("feed: no url configured; set feed.url or pass --url")
		}

		maxItems := cfg.Feed.MaxItems
		if feedMax > 0 {
			maxItems = feedMax
		}

		f, err := feed.Fetch(cmd.Context(), nil, url)
		if err != nil {
			log.Printf("feed fetch failed: %v", err)
			fmt.Println(feed.MsgError)
			return nil
		}

		switch feedFormat {
		case "html":
			fmt.Println(feed.RenderHTML(f, maxItems, time.Now()))
		default:
			fmt.Println(feed.Render(f, maxItems, time.Now()))
		}
		return nil
	},
}

func init() {
	feedCmd.Flags().StringVar(&feedURL, "url", "", "feed endpoint (overrides feed.url)")
	feedCmd.Flags().IntVar(&feedMax, "max", 0, "maximum items to render")
	feedCmd.Flags().StringVar(&feedFormat, "format", "text", "output format: text or html")
	rootCmd.AddCommand(feedCmd)
}
