// Command arrowgen discovers dependency-providing modules in a Swift
// source tree and emits a single generated file wiring a Swinject
// container.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/arrowgen/arrowgen/internal/config"
	"github.com/arrowgen/arrowgen/internal/generate"
)

var verbose bool

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("arrowgen: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "arrowgen",
		Short:         "Generate Swinject registrations from dependency-providing modules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "log each pipeline stage to stderr")
	root.AddCommand(newGenerateCommand())
	return root
}

func newGenerateCommand() *cobra.Command {
	var (
		isPackage              bool
		targetName             string
		projectPath            string
		sourcePaths            []string
		dryRun                 bool
		namingAttribute        string
		parameterNameAttribute string
		containerImportName    string
		singletonMarker        string
		transientMarker        string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run the full discover/extract/resolve/emit pipeline once",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				logVerbose("could not load .env: %v", err)
			}

			if projectPath == "" {
				projectPath = os.Getenv("ARROWGEN_PROJECT_PATH")
			}
			if err := requireArgument("project-path", projectPath); err != nil {
				return err
			}

			cfg, err := config.Build(projectPath, config.Overrides{
				NamingAttribute:        namingAttribute,
				ParameterNameAttribute: parameterNameAttribute,
				ContainerImportName:    containerImportName,
				SingletonMarker:        singletonMarker,
				TransientMarker:        transientMarker,
			})
			if err != nil {
				return fmt.Errorf("building configuration: %w", err)
			}

			if targetName == "" {
				targetName = os.Getenv("ARROWGEN_TARGET_NAME")
			}
			if targetName == "" {
				targetName = cfg.PackageName
			}
			if err := requireArgument("target-name", targetName); err != nil {
				return err
			}
			if len(sourcePaths) == 0 {
				return requireArgument("package-sources-path", "")
			}

			logVerbose("discovering sources under %v", sourcePaths)

			req := generate.Request{
				ProjectPath:       projectPath,
				TargetName:        targetName,
				IsPackage:         isPackage,
				PackageSourcePath: sourcePaths,
				DryRun:            dryRun,
			}

			result, err := generate.Run(req, cfg)
			if err != nil {
				return err
			}

			logVerbose("read %d source file(s), found %d module(s), %d provider(s)",
				result.SourceFiles, result.ModuleCount, result.ProviderCount)

			if dryRun {
				fmt.Fprint(cmd.OutOrStdout(), result.Output)
				return nil
			}

			logVerbose("wrote %s", result.WrittenPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&isPackage, "is-package", false, "write output under Sources/<target-name> instead of the project root")
	cmd.Flags().StringVar(&targetName, "target-name", "", "name of the Swift target being generated for")
	cmd.Flags().StringVar(&projectPath, "project-path", "", "root of the project receiving the generated file")
	cmd.Flags().StringArrayVar(&sourcePaths, "package-sources-path", nil, "a root to search for Swift sources (repeatable)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the generated source instead of writing it")
	cmd.Flags().StringVar(&namingAttribute, "naming-attribute", "", "override the provider naming-attribute token (default: convention/Named)")
	cmd.Flags().StringVar(&parameterNameAttribute, "parameter-name-attribute", "", "override the parameter naming-attribute token (default: convention/Named)")
	cmd.Flags().StringVar(&containerImportName, "container-import-name", "", "override the always-emitted container import (default: convention/Swinject)")
	cmd.Flags().StringVar(&singletonMarker, "singleton-marker", "", "override the singleton scope marker name (default: convention/SingletonModule)")
	cmd.Flags().StringVar(&transientMarker, "transient-marker", "", "override the transient scope marker name (default: convention/TransientModule)")

	return cmd
}

func requireArgument(name, value string) error {
	if value != "" {
		return nil
	}
	return fmt.Errorf("Argument: --%s is required.", name)
}

func logVerbose(format string, args ...any) {
	if !verbose {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
