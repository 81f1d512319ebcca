package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcanaland/manaview/internal/collection"
	"github.com/arcanaland/manaview/internal/config"
	"github.com/spf13/cobra"
)

// collectionCmd represents the collection command group
var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Manage card collections in your library",
	Long:  `Commands for managing card collections in your collection library.`,
}

// collectionListCmd represents the collection list command
var collectionListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available collections in your library",
	Run: func(cmd *cobra.Command, args []string) {
		libraryPath := config.GetCollectionLibraryPath()

		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Printf("Collection library at %s does not exist.\n", libraryPath)
			fmt.Println("Run 'manaview collection init' to create it.")
			return
		}

		defaultCollection, err := config.GetDefaultCollection()
		if err != nil {
			fmt.Printf("Error getting default collection: %v\n", err)
			return
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			fmt.Printf("Error reading collection library: %v\n", err)
			return
		}

		if len(entries) == 0 {
			fmt.Println("No collections found in your library.")
			fmt.Println("You can add collections by copying them to:", libraryPath)
			return
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
				continue
			}

			col, err := collection.Load(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				// Not a valid collection, skip
				continue
			}

			name := strings.TrimSuffix(entry.Name(), ".toml")
			if name == defaultCollection {
				fmt.Printf("* %s (%s, %d cards) [DEFAULT]\n", name, col.Name, col.Size())
			} else {
				fmt.Printf("  %s (%s, %d cards)\n", name, col.Name, col.Size())
			}
		}
	},
}

// collectionSetDefaultCmd represents the collection set-default command
var collectionSetDefaultCmd = &cobra.Command{
	Use:   "set-default [collection_name]",
	Short: "Set the default collection",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

		collectionPath, err := config.GetCollectionPath(name)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		// Try to load the collection to make sure it's valid
		_, err = collection.Load(collectionPath)
		if err != nil {
			fmt.Printf("Error: Not a valid collection - %v\n", err)
			return
		}

		err = config.SetDefaultCollection(name)
		if err != nil {
			fmt.Printf("Error setting default collection: %v\n", err)
			return
		}

		fmt.Printf("Default collection set to: %s\n", name)
	},
}

// collectionInitCmd represents the collection init command
var collectionInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the collection library",
	Run: func(cmd *cobra.Command, args []string) {
		libraryPath := config.GetCollectionLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			fmt.Printf("Error creating collection library: %v\n", err)
			return
		}

		fmt.Println("Collection library initialized at:", libraryPath)
		fmt.Println("You can now add collections by copying .toml files to this directory.")

		_, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error initializing config: %v\n", err)
			return
		}

		configPath := config.GetConfigFilePath()
		fmt.Println("Config file initialized at:", configPath)
	},
}

func init() {
	RootCmd.AddCommand(collectionCmd)
	collectionCmd.AddCommand(collectionListCmd)
	collectionCmd.AddCommand(collectionSetDefaultCmd)
	collectionCmd.AddCommand(collectionInitCmd)
}
