package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var opts runOptions
	var configFlag string

	rootCmd := &cobra.Command{
		Use:   "exifsort",
		Short: "Organize JPEG photos by EXIF capture time",
		Long: `exifsort scans a directory for JPEG files, reads each file's
DateTimeOriginal EXIF tag, and moves the file into the output directory under
a canonical YYYY-MM-DD_HH-MM-SS.jpg name. Files whose timestamps collide get
a _1, _2, ... suffix; files without usable metadata are left in place.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configPath = configFlag
			opts.workersChanged = cmd.Flags().Changed("workers")
			return runOrganize(cmd, opts)
		},
	}

	rootCmd.Flags().StringVarP(&opts.inDir, "in-dir", "i", "", "input directory to scan")
	rootCmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", "", "output directory (created if absent)")
	rootCmd.Flags().BoolVar(&opts.fullScan, "full-scan", false, "read entire files when locating EXIF data (slower, more reliable)")
	rootCmd.Flags().IntVar(&opts.workers, "workers", 0, "worker pool size (0 = one per CPU)")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "configuration file path")
	_ = rootCmd.MarkFlagRequired("in-dir")
	_ = rootCmd.MarkFlagRequired("out-dir")

	rootCmd.AddCommand(newConfigCommand(&configFlag))

	return rootCmd
}
