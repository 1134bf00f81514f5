package main

import (
	"fmt"
	"os"

	"ledscene/config"
	"ledscene/log"
	"ledscene/store"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	version    = "0.1.0"
	configFlag string

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	swatchTmpl = lipgloss.NewStyle().Bold(true)

	rootCmd = &cobra.Command{
		Use:     "ledscene",
		Short:   "ledscene - edit and inspect LED strip scene files",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	newCmd = &cobra.Command{
		Use:   "new <file>",
		Short: "Create a scene file with one default scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg, err := config.Load(configFlag)
			if err != nil {
				log.WarningLog.Printf("config: %v", err)
			}

			cache := store.NewCache()
			cache.CreateNewScene(cfg.LEDCount, cfg.FPS)

			files := store.NewFileService(cache)
			if err := files.SaveToPath(args[0]); err != nil {
				return err
			}
			fmt.Printf("created %s (%d LEDs @ %d fps)\n", args[0], cfg.LEDCount, cfg.FPS)
			return nil
		},
	}

	infoCmd = &cobra.Command{
		Use:   "info <file>",
		Short: "Print a summary of a scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cache := store.NewCache()
			files := store.NewFileService(cache)
			if err := files.LoadFromPath(args[0]); err != nil {
				return err
			}
			printSummary(cache)
			return nil
		},
	}

	normalizeCmd = &cobra.Command{
		Use:   "normalize <file>",
		Short: "Repair a scene file's segment arrays in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cache := store.NewCache()
			files := store.NewFileService(cache)
			// Load repairs every segment on ingestion; saving writes the
			// normalized document back.
			if err := files.LoadFromPath(args[0]); err != nil {
				return err
			}
			if err := files.SaveToPath(args[0]); err != nil {
				return err
			}
			fmt.Printf("normalized %s\n", args[0])
			return nil
		},
	}
)

func printSummary(cache *store.Cache) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("%d scene(s), current scene %d",
		cache.SceneCount(), cache.CurrentSceneID())))

	for id := 0; id < cache.SceneCount(); id++ {
		sc, _ := cache.Scene(id)
		fmt.Printf("\n%s %d  %s\n", labelStyle.Render("scene"), sc.SceneID,
			labelStyle.Render(fmt.Sprintf("%d LEDs @ %d fps", sc.LEDCount, sc.FPS)))

		for pi, pal := range sc.Palettes {
			marker := " "
			if pi == sc.CurrentPaletteID {
				marker = "*"
			}
			line := fmt.Sprintf("  %s palette %d  ", marker, pi)
			for _, hex := range pal.HexColors() {
				line += swatchTmpl.Foreground(lipgloss.Color(hex)).Render("██") + " "
			}
			fmt.Println(line)
		}

		for _, eff := range sc.Effects {
			marker := " "
			if eff.EffectID == sc.CurrentEffectID {
				marker = "*"
			}
			fmt.Printf("  %s effect %d  %d segment(s)\n", marker, eff.EffectID, len(eff.Segments))
		}
	}
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(normalizeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
