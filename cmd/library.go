package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cardhaus/checklister/internal/config"
	"github.com/cardhaus/checklister/internal/dataset"
	"github.com/cardhaus/checklister/internal/release"
)

// libraryCmd represents the library command group
var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage your checklist library",
	Long:  `Commands for managing the local checklist library (the <category>/<year>/<release>.json tree).`,
}

// libraryListCmd represents the library ls command
var libraryListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List release documents in your checklist library",
	Run: func(cmd *cobra.Command, args []string) {
		libraryPath := config.GetLibraryPath()

		// Check if library exists
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Printf("Checklist library at %s does not exist.\n", libraryPath)
			fmt.Println("Run 'checklister library init' to create it.")
			return
		}

		categories, err := os.ReadDir(libraryPath)
		if err != nil {
			fmt.Printf("Error reading checklist library: %v\n", err)
			return
		}

		found := 0
		for _, categoryEntry := range categories {
			if !categoryEntry.IsDir() {
				continue
			}
			category := categoryEntry.Name()

			years, err := os.ReadDir(filepath.Join(libraryPath, category))
			if err != nil {
				continue
			}
			for _, yearEntry := range years {
				if !yearEntry.IsDir() {
					continue
				}
				year := yearEntry.Name()

				files, err := os.ReadDir(filepath.Join(libraryPath, category, year))
				if err != nil {
					continue
				}
				for _, file := range files {
					if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
						continue
					}

					rel, err := release.Load(filepath.Join(libraryPath, category, year, file.Name()))
					if err != nil {
						// Not a valid release document, skip
						continue
					}

					fmt.Printf("  %s/%s/%s (%s) [%d sets]\n",
						category, year, file.Name(), rel.Name, len(rel.Sets))
					found++
				}
			}
		}

		if found == 0 {
			fmt.Println("No release documents found in your checklist library.")
			fmt.Println("You can add documents with 'checklister normalize', writing into:", libraryPath)
		}
	},
}

// librarySetCmd represents the library set command
var librarySetCmd = &cobra.Command{
	Use:   "set [path]",
	Short: "Set the checklist library location",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		// Check if the directory exists
		info, err := os.Stat(path)
		if err != nil {
			fmt.Printf("Error: library directory not found: %s\n", path)
			return
		}
		if !info.IsDir() {
			fmt.Printf("Error: not a directory: %s\n", path)
			return
		}

		err = config.SetLibrary(path)
		if err != nil {
			fmt.Printf("Error setting library location: %v\n", err)
			return
		}

		fmt.Printf("Checklist library set to: %s\n", path)
	},
}

// librarySetCategoryCmd represents the library set-category command
var librarySetCategoryCmd = &cobra.Command{
	Use:   "set-category [category]",
	Short: "Set the default category for filing release documents",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		category := args[0]

		if strings.ContainsAny(category, `/\`) {
			fmt.Printf("Error: not a valid category name: %s\n", category)
			return
		}

		err := config.SetDefaultCategory(category)
		if err != nil {
			fmt.Printf("Error setting default category: %v\n", err)
			return
		}

		fmt.Printf("Default category set to: %s\n", category)
	},
}

// libraryInitCmd represents the library init command
var libraryInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the checklist library",
	Run: func(cmd *cobra.Command, args []string) {
		libraryPath := config.GetLibraryPath()

		// Create the library with one directory per counted category
		for _, category := range dataset.CountedCategories {
			if err := os.MkdirAll(filepath.Join(libraryPath, category), 0755); err != nil {
				fmt.Printf("Error creating checklist library: %v\n", err)
				return
			}
		}

		fmt.Println("Checklist library initialized at:", libraryPath)
		fmt.Println("Add release documents under <category>/<year>/.")

		// Initialize config
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
	RootCmd.AddCommand(libraryCmd)
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(librarySetCmd)
	libraryCmd.AddCommand(librarySetCategoryCmd)
	libraryCmd.AddCommand(libraryInitCmd)
}
