package cmd

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/arcanaland/manaview/internal/artwork"
	"github.com/arcanaland/manaview/internal/collection"
	"github.com/arcanaland/manaview/internal/config"
	"github.com/arcanaland/manaview/internal/render"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display a card's metadata and artwork",
	Long: `Show renders a card from a collection: name, mana cost, type line,
rarity, set, rules text and stats beside the card's artwork as ANSI art.

You can specify a collection using the --collection flag, which will look
for the collection in your library (XDG_DATA_HOME/manaview/collections)
or as a direct file path. If no collection is specified, the default
collection from your config will be used.

Examples:
  manaview show lightning-bolt
  manaview show --collection starter "Llanowar Elves"
  manaview show --collection ./my-cards.toml black-lotus`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cardID := args[0]

		collectionFlag, _ := cmd.Flags().GetString("collection")
		noArt, _ := cmd.Flags().GetBool("no-art")

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		name := collectionFlag
		if name == "" {
			name = cfg.DefaultCollection
		}

		collectionPath, err := config.GetCollectionPath(name)
		if err != nil {
			return err
		}

		col, err := collection.Load(collectionPath)
		if err != nil {
			return fmt.Errorf("error loading collection: %v", err)
		}

		c, err := col.GetCard(cardID)
		if err != nil {
			return fmt.Errorf("error getting card: %v", err)
		}

		rows := cfg.Artwork.Height
		cols, _ := artwork.CellSize(rows)

		// Wrap rules text to what is left of the terminal width after
		// the artwork column.
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width <= 0 {
			width = 80
		}
		infoWidth := width - cols - 8
		if infoWidth < 20 {
			infoWidth = 20
		}

		frags := render.CardFields(c, infoWidth)

		loader := artwork.NewLoader()
		loaded, failed := loader.SetSource(c.ArtworkSources()...)

		var art string
		if loader.State() == artwork.Loading && !noArt {
			fetcher := artwork.NewFetcher(config.GetArtworkCacheDir(), rows, cfg.Artwork.Color)
			art, err = fetcher.Fetch(cmd.Context(), loader.Source())
			if err != nil {
				// Load failures degrade to the fallback frame.
				failed()
			} else {
				loaded()
			}
		} else if noArt {
			failed()
		}

		frame := render.ArtworkFrame(loader.State(), art, c.Name, rows)
		fmt.Print(render.Panel(frame.Text, frags))

		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("collection", "c", "", "Specify a collection from your library or a path to a collection file")
	showCmd.Flags().Bool("no-art", false, "Skip fetching artwork and render the fallback frame")
}
